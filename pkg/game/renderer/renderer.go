// Package renderer turns game messages into output. Messages carry an inline
// markup of the form FUNCTION{operand}:
//
//	GT{KEY}      catalog lookup
//	ROOM{KEY}    catalog lookup, styled as a room
//	DIR{word}    a relative direction
//	ACTION{word} a command word, first letter highlighted
//	NUM{n}       a number
//	EXIT{KEY}    catalog lookup, styled as the way out
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"labyrinth/pkg/game/text"
)

var markup = regexp.MustCompile(`([A-Z]+)\{([^{}]+)\}`)

// Styler applies a TextStyle to a piece of text
type Styler func(text string, style TextStyle) string

// PlainStyler leaves text unstyled
func PlainStyler(text string, _ TextStyle) string {
	return text
}

// Format resolves the markup in msg with style
func Format(style Styler, msg string) string {
	return markup.ReplaceAllStringFunc(msg, func(match string) string {
		parts := markup.FindStringSubmatch(match)
		function, operand := parts[1], parts[2]

		switch function {
		case "GT":
			return text.Get(operand)
		case "ROOM":
			return style(text.Get(operand), StyleRoom)
		case "DIR":
			return style(operand, StyleDirection)
		case "ACTION":
			return style(operand[0:1], StyleActionShort) + style(operand[1:], StyleAction)
		case "NUM":
			return style(operand, StyleNumber)
		case "EXIT":
			return style(text.Get(operand), StyleExit)
		default:
			log.WithField("function", function).Warn("unknown markup function")
			return match
		}
	})
}

// Markup helpers for building messages

func Room(key string) string {
	return "ROOM{" + key + "}"
}

func Dir(word string) string {
	return "DIR{" + word + "}"
}

func Action(word string) string {
	return "ACTION{" + word + "}"
}

func Num(n int) string {
	return fmt.Sprintf("NUM{%d}", n)
}

// Join joins marked up words for display in a list
func Join(words []string) string {
	return strings.Join(words, ", ")
}
