package gameplay

import (
	"strings"

	log "github.com/sirupsen/logrus"

	engineinput "labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/pathfind"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
	"labyrinth/pkg/game/text"
)

// Help logs the help text with every command word, its short forms, and the directions
func Help(g *state.Game) {
	var actions []string
	for _, a := range engineinput.AllActions() {
		actions = append(actions, commandWords(a))
	}

	var directions []string
	for _, r := range world.AllRelatives() {
		directions = append(directions, renderer.Dir(r.String()))
	}

	logMessage(g, "GT{HELP_LOST}")
	logMessage(g, text.Get("HELP_COMMANDS"), renderer.Join(actions))
	logMessage(g, text.Get("HELP_DIRECTIONS"), renderer.Join(directions))
}

// commandWords renders the canonical word of an action followed by its aliases,
// e.g. "quit (exit/q)"
func commandWords(a engineinput.Action) string {
	name := engineinput.ActionName(a)

	var aliases []string
	for _, word := range engineinput.WordsFor(a) {
		if word != name {
			aliases = append(aliases, renderer.Action(word))
		}
	}

	if len(aliases) == 0 {
		return renderer.Action(name)
	}
	return renderer.Action(name) + " (" + strings.Join(aliases, "/") + ")"
}

// Evaluate logs how many doors separate the player from the nearest exit
func Evaluate(g *state.Game) {
	exit, hops, ok := pathfind.NearestMatch(g.Current, (*world.Room).IsEnd)
	if !ok {
		logMessage(g, "GT{NO_PATH}")
		return
	}

	log.WithFields(log.Fields{"from": g.Current.ID(), "exit": exit.ID(), "doors": hops}).Debug("evaluated path")
	logMessage(g, text.Get("PATH_LENGTH"), renderer.Num(hops))
}
