package state

import (
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/generator"
)

const maxMessages = 20

// Game represents the state of one walk through the labyrinth
type Game struct {
	Maze *generator.Maze

	Current *world.Room
	Facing  world.Direction

	Messages []string

	Finished bool // The loop should stop
	Won      bool // The player reached an end room

	Moves int // Doors walked through so far
}

// NewGame creates a new game in the maze's start room, facing south
func NewGame(maze *generator.Maze) *Game {
	return &Game{
		Maze:     maze,
		Current:  maze.Start(),
		Facing:   world.South,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Enter moves the player into room, now facing the direction they walked
func (g *Game) Enter(room *world.Room, facing world.Direction) {
	g.Current = room
	g.Facing = facing
	g.Moves++
}

// Finish stops the game; won records whether the exit was reached
func (g *Game) Finish(won bool) {
	g.Finished = true
	g.Won = won
}
