package input

import (
	"io"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"", Command{}},
		{"   ", Command{}},
		{"help", Command{Word: "help"}},
		{"go left", Command{Word: "go", Second: "left"}},
		{"  GO   Left  ", Command{Word: "go", Second: "left"}},
		{"go left and then right", Command{Word: "go", Second: "left"}},
		{"go\tback", Command{Word: "go", Second: "back"}},
	}
	for _, c := range cases {
		if got := Parse(c.line); got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.line, got, c.want)
		}
	}
}

func TestCommand_HasSecond(t *testing.T) {
	if (Command{Word: "go"}).HasSecond() {
		t.Error("HasSecond() = true without a second word")
	}
	if !(Command{Word: "go", Second: "left"}).HasSecond() {
		t.Error("HasSecond() = false with a second word")
	}
	if !(Command{}).IsEmpty() {
		t.Error("IsEmpty() = false for an empty command")
	}
}

func TestReader_ReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("go left\r\nhelp\nquit"))

	want := []string{"go left", "help", "quit"}
	for _, w := range want {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error: %v", err)
		}
		if got != w {
			t.Errorf("ReadLine() = %q, want %q", got, w)
		}
	}

	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}
}

func TestReader_ReadCommand(t *testing.T) {
	r := NewReader(strings.NewReader("Go Straight\n"))
	cmd, err := r.ReadCommand()
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Word != "go" || cmd.Second != "straight" {
		t.Errorf("ReadCommand() = %+v", cmd)
	}
	if _, err := r.ReadCommand(); err != io.EOF {
		t.Errorf("ReadCommand() at end = %v, want io.EOF", err)
	}
}

func TestMapToIntent(t *testing.T) {
	cases := map[string]Action{
		"go":       ActionGo,
		"quit":     ActionQuit,
		"q":        ActionQuit,
		"help":     ActionHelp,
		"?":        ActionHelp,
		"evaluate": ActionEvaluate,
		"look":     ActionLook,
		"dance":    ActionNone,
		"":         ActionNone,
	}
	for word, want := range cases {
		got := MapToIntent(Command{Word: word, Second: "x"})
		if got.Action != want {
			t.Errorf("MapToIntent(%q).Action = %v, want %v", word, got.Action, want)
		}
		if got.Argument != "x" {
			t.Errorf("MapToIntent(%q).Argument = %q, want \"x\"", word, got.Argument)
		}
	}
}

func TestWordsFor(t *testing.T) {
	got := WordsFor(ActionQuit)
	want := []string{"exit", "q", "quit"}
	if len(got) != len(want) {
		t.Fatalf("WordsFor(ActionQuit) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WordsFor(ActionQuit) = %v, want %v", got, want)
			break
		}
	}
	for _, a := range AllActions() {
		if MapToAction(ActionName(a)) != a {
			t.Errorf("canonical word %q does not map back to its action", ActionName(a))
		}
	}
}
