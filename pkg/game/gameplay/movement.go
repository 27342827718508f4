package gameplay

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
	"labyrinth/pkg/game/text"
)

// Go moves the player through the door in the relative direction named by word
func Go(g *state.Game, word string) {
	if word == "" {
		logMessage(g, "GT{GO_WHERE}")
		return
	}

	rel, ok := world.ParseRelative(word)
	if !ok {
		logMessage(g, "GT{INVALID_DIRECTION}")
		return
	}

	dir := rel.Absolute(g.Facing)
	next := g.Current.ExitTo(dir)
	if next == nil {
		logMessage(g, "GT{NO_DOOR}")
		return
	}

	from := g.Current.ID()
	g.Enter(next, dir)

	log.WithFields(log.Fields{
		"from":   from,
		"to":     next.ID(),
		"facing": dir.String(),
		"moves":  g.Moves,
	}).Debug("player moved")

	if next.IsEnd() {
		logMessage(g, "EXIT{FOUND_EXIT}")
		g.Finish(true)
		log.WithFields(log.Fields{"maze": g.Maze.ID, "moves": g.Moves}).Info("exit found")
		return
	}

	DescribeRoom(g)
}

// DescribeRoom logs where the player is and which doors they can take
func DescribeRoom(g *state.Game) {
	logMessage(g, text.Get("YOU_ARE"), renderer.Room(g.Current.Description()))

	doors := DoorWords(g.Current, g.Facing)
	if len(doors) == 0 {
		logMessage(g, "GT{POSSIBLE_DOORS} GT{NO_DOORS}")
		return
	}
	logMessage(g, "GT{POSSIBLE_DOORS} %s", renderer.Join(doors))
}

// DoorWords lists the exits of room, in compass order, as seen by someone facing
// the given direction
func DoorWords(room *world.Room, facing world.Direction) []string {
	var words []string
	for _, dir := range room.Exits() {
		words = append(words, renderer.Dir(world.RelativeTo(facing, dir).String()))
	}
	return words
}

// logMessage adds a marked up message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	g.AddMessage(msg)
}
