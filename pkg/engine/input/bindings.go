package input

import (
	"sort"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionGo

	// Meta
	ActionLook
	ActionEvaluate
	ActionHelp
	ActionQuit
)

// Intent is what the player wants to do, with the argument they gave for it.
type Intent struct {
	Action   Action
	Argument string
}

// bindings maps command words to actions.
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"go": ActionGo,
	"g":  ActionGo,

	"look": ActionLook,
	"l":    ActionLook,

	"evaluate": ActionEvaluate,
	"eval":     ActionEvaluate,

	"help": ActionHelp,
	"?":    ActionHelp,

	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// MapToAction returns the action bound to a command word
func MapToAction(word string) Action {
	if act, ok := bindings[word]; ok {
		return act
	}
	return ActionNone
}

// MapToIntent applies the bindings to a parsed command
func MapToIntent(cmd Command) Intent {
	return Intent{
		Action:   MapToAction(cmd.Word),
		Argument: cmd.Second,
	}
}

// ActionName returns the canonical command word for an action.
func ActionName(a Action) string {
	switch a {
	case ActionGo:
		return "go"
	case ActionLook:
		return "look"
	case ActionEvaluate:
		return "evaluate"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// AllActions returns every bindable action in help order
func AllActions() []Action {
	return []Action{ActionGo, ActionQuit, ActionHelp, ActionEvaluate, ActionLook}
}

// WordsFor returns the words bound to an action, sorted.
func WordsFor(a Action) []string {
	var words []string
	for word, act := range bindings {
		if act == a {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words
}
