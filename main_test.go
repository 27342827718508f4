package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PlaysUntilQuit(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--size", "3", "--seed", "9", "--log-level", "error"}, strings.NewReader("help\nevaluate\ngo nowhere\nquit\n"), &out)

	assert.Equal(t, 0, code)
	got := out.String()
	assert.Contains(t, got, "Welcome to the labyrinth!")
	assert.Contains(t, got, "Your command words are: go (g), quit (exit/q), help (?), evaluate (eval), look (l)")
	assert.Contains(t, got, "doors to the exit!")
	assert.Contains(t, got, "This isn't a valid direction!")
	assert.True(t, strings.HasSuffix(got, "Thank you for playing. Good bye.\n"))
}

func TestRun_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--size", "2", "--seed", "1", "--log-level", "error"}, strings.NewReader("look"), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Thank you for playing. Good bye.")
}

func TestRun_Reveal(t *testing.T) {
	var out bytes.Buffer
	run([]string{"--size", "2", "--seed", "1", "--reveal", "--log-level", "error"}, strings.NewReader(""), &out)

	assert.Contains(t, out.String(), "+---+---+")
}

func TestRun_InvalidConfig(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{"--size", "1"}, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}

func TestRun_Dump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	var out bytes.Buffer
	code := run([]string{"--size", "4", "--seed", "2", "--dump", path, "--log-level", "error"}, strings.NewReader("quit\n"), &out)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "size: 4")
}
