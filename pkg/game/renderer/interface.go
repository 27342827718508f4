package renderer

import (
	"labyrinth/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleDirection
	StyleAction
	StyleActionShort
	StyleNumber
	StyleSubtle
	StyleExit
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// RenderFrame prints the pending messages of the game and empties the log
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText resolves the renderer's markup in a message
	FormatText(msg string) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// Prompt asks for the next command
	Prompt()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup.
// Without a renderer the markup is resolved to plain text.
func FormatText(msg string) string {
	if Current != nil {
		return Current.FormatText(msg)
	}
	return Format(PlainStyler, msg)
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// Prompt asks for the next command with the current renderer
func Prompt() {
	if Current != nil {
		Current.Prompt()
	}
}
