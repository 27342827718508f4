package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
)

// Prompt is printed before every command
const Prompt = "> "

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	noColor bool

	colorRoom        color.Style
	colorDirection   color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorNumber      color.Style
	colorSubtle      color.Style
	colorExit        color.Style
}

// New creates a TUI renderer writing to out. Colour is only used when out is a
// terminal and noColor is not set.
func New(out io.Writer, noColor bool) *TUIRenderer {
	if f, ok := out.(*os.File); !ok || !terminal.IsTerminal(f) {
		noColor = true
	}
	return &TUIRenderer{out: out, noColor: noColor}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgCyan}
	t.colorDirection = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorNumber = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorExit = color.Style{color.FgGreen}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.noColor {
		return text
	}

	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleDirection:
		return t.colorDirection.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleNumber:
		return t.colorNumber.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	default:
		return text
	}
}

// FormatText resolves the markup in a message
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.Format(t.StyleText, msg)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText(msg))
}

// RenderFrame prints the pending messages and clears the log
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	for _, msg := range g.Messages {
		t.ShowMessage(msg)
	}
	g.ClearMessages()
}

// Prompt prints the input prompt
func (t *TUIRenderer) Prompt() {
	fmt.Fprint(t.out, "\n"+t.StyleText(Prompt, renderer.StyleSubtle))
}

// Plan prints a maze plan, dimmed, if it fits the terminal
func (t *TUIRenderer) Plan(plan string) {
	width := terminal.GetWidth()
	for _, line := range strings.Split(strings.TrimRight(plan, "\n"), "\n") {
		if len(line) > width {
			t.ShowMessage("GT{PLAN_TOO_WIDE}")
			return
		}
	}
	t.ShowMessage("GT{PLAN_HEADER}")
	fmt.Fprint(t.out, t.StyleText(plan, renderer.StyleSubtle))
}
