// Package input reads player commands from a line-oriented stream.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Command is a tokenized input line: a command word and an optional second word
type Command struct {
	Word   string
	Second string
}

// HasSecond returns true if the command has a second word
func (c Command) HasSecond() bool {
	return c.Second != ""
}

// IsEmpty returns true if the line held no words at all
func (c Command) IsEmpty() bool {
	return c.Word == ""
}

// Parse splits a line into a Command. Words are lower-cased; anything after the
// second word is ignored.
func Parse(line string) Command {
	fields := strings.Fields(strings.ToLower(line))

	var cmd Command
	if len(fields) > 0 {
		cmd.Word = fields[0]
	}
	if len(fields) > 1 {
		cmd.Second = fields[1]
	}
	return cmd
}

// Reader reads input lines
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps src in a buffered line reader
func NewReader(src io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(src)}
}

// ReadLine reads a single line without its line ending.
// A final line without a newline is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadCommand reads and tokenizes the next line
func (r *Reader) ReadCommand() (Command, error) {
	line, err := r.ReadLine()
	if err != nil {
		return Command{}, err
	}
	return Parse(line), nil
}
