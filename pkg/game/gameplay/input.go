// Package gameplay provides core game logic for player movement and commands.
package gameplay

import (
	log "github.com/sirupsen/logrus"

	engineinput "labyrinth/pkg/engine/input"
	"labyrinth/pkg/game/state"
)

// ProcessCommand handles one parsed input line
func ProcessCommand(g *state.Game, cmd engineinput.Command) {
	ProcessIntent(g, engineinput.MapToIntent(cmd))
}

// ProcessIntent handles a high-level input intent.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.Finished {
		return
	}

	log.WithFields(log.Fields{
		"action":   engineinput.ActionName(intent.Action),
		"argument": intent.Argument,
		"room":     g.Current.ID(),
	}).Debug("processing command")

	switch intent.Action {
	case engineinput.ActionGo:
		Go(g, intent.Argument)
		return

	case engineinput.ActionEvaluate:
		Evaluate(g)
		return

	case engineinput.ActionHelp:
		Help(g)
		return

	case engineinput.ActionLook:
		DescribeRoom(g)
		return

	case engineinput.ActionQuit:
		Quit(g)
		return
	}

	logMessage(g, "GT{UNKNOWN_COMMAND}")
}
