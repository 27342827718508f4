package generator

import (
	"strings"

	"github.com/google/uuid"

	"labyrinth/pkg/engine/world"
)

// Maze is a generated room graph together with the grid it was carved on
type Maze struct {
	ID uuid.UUID

	grid  *world.Grid
	start *world.Room
	ends  []*world.Room
	edges int
}

// Size returns the side length of the maze
func (m *Maze) Size() int {
	return m.grid.Size()
}

// Start returns the entry room
func (m *Maze) Start() *world.Room {
	return m.start
}

// Ends returns every room marked as an exit
func (m *Maze) Ends() []*world.Room {
	return m.ends
}

// Rooms returns all rooms of the maze
func (m *Maze) Rooms() []*world.Room {
	return m.grid.Rooms()
}

// Grid returns the layout the maze was carved on
func (m *Maze) Grid() *world.Grid {
	return m.grid
}

// EdgeCount returns the number of doors, counting each two-way door once
func (m *Maze) EdgeCount() int {
	return m.edges
}

// String renders the maze as an ASCII plan. S marks the start and E the exits.
func (m *Maze) String() string {
	return m.Plan(nil)
}

// Plan renders the maze as an ASCII plan. mark may return a symbol for a room;
// rooms it leaves blank show S for the start, E for exits and a space otherwise.
func (m *Maze) Plan(mark func(*world.Room) byte) string {
	var b strings.Builder
	size := m.grid.Size()

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", size) + "\n")

	for y := 0; y < size; y++ {
		// Room row
		b.WriteString("|")
		for x := 0; x < size; x++ {
			r := m.grid.RoomAt(world.Position{X: x, Y: y})

			symbol := byte(' ')
			if mark != nil {
				symbol = mark(r)
			}
			if symbol == ' ' || symbol == 0 {
				switch {
				case r == m.start:
					symbol = 'S'
				case r.IsEnd():
					symbol = 'E'
				default:
					symbol = ' '
				}
			}
			b.WriteString(" " + string(symbol) + " ")

			if r.ExitTo(world.East) != nil {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for x := 0; x < size; x++ {
			r := m.grid.RoomAt(world.Position{X: x, Y: y})
			if r.ExitTo(world.South) != nil {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
