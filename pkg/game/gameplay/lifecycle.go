package gameplay

import (
	log "github.com/sirupsen/logrus"

	engineinput "labyrinth/pkg/engine/input"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
	"labyrinth/pkg/game/text"
)

// BuildGame generates a maze and places the player at its start
func BuildGame(opts generator.Options) (*state.Game, error) {
	maze, err := generator.DefaultGenerator.Generate(opts)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"maze":  maze.ID,
		"size":  maze.Size(),
		"start": opts.Start.String(),
		"end":   opts.End.String(),
	}).Info("maze ready")

	return state.NewGame(maze), nil
}

// Welcome logs the greeting and the first room description
func Welcome(g *state.Game) {
	logMessage(g, "GT{WELCOME}")
	logMessage(g, text.Get("HELP_HINT"), renderer.Action(engineinput.ActionName(engineinput.ActionHelp)))
	DescribeRoom(g)
}

// Quit ends the game without reaching the exit
func Quit(g *state.Game) {
	g.Finish(false)
	log.WithField("moves", g.Moves).Info("player quit")
}

// Goodbye returns the farewell line
func Goodbye() string {
	return "GT{GOODBYE}"
}
