package world

import "fmt"

// Grid maps grid positions to rooms while a maze is being built.
// Rooms themselves never learn their position.
type Grid struct {
	rooms     []*Room
	positions map[*Room]Position
	size      int
}

// NewGrid creates a size x size grid of unconnected rooms.
// describe is called once per room, in row-major order, to pick its description.
func NewGrid(size int, describe func() string) *Grid {
	g := &Grid{}
	g.Build(size, describe)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(size int, describe func() string) {
	if size <= 0 {
		panic(fmt.Sprintf("grid size must be positive, got %d", size))
	}

	g.size = size
	g.rooms = make([]*Room, 0, size*size)
	g.positions = make(map[*Room]Position, size*size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			description := ""
			if describe != nil {
				description = describe()
			}

			r := NewRoom(len(g.rooms), description)

			g.rooms = append(g.rooms, r)
			g.positions[r] = Position{X: x, Y: y}
		}
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of rooms in the grid
func (g *Grid) Len() int {
	return len(g.rooms)
}

// Rooms returns all rooms in row-major order
func (g *Grid) Rooms() []*Room {
	return g.rooms
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// OnBorder checks if a position is on the outer edge of the grid
func (g *Grid) OnBorder(p Position) bool {
	return g.IsValidPosition(p) && (p.X == 0 || p.Y == 0 || p.X == g.size-1 || p.Y == g.size-1)
}

// RoomAt returns the room at the given position, or nil if out of bounds
func (g *Grid) RoomAt(p Position) *Room {
	if !g.IsValidPosition(p) {
		return nil
	}
	return g.rooms[p.Y*g.size+p.X]
}

// PositionOf returns where a room sits on the grid
func (g *Grid) PositionOf(r *Room) (Position, bool) {
	p, ok := g.positions[r]
	return p, ok
}

// Origin returns the top-left position
func (g *Grid) Origin() Position {
	return Position{X: 0, Y: 0}
}

// Center returns the position at the grid center
func (g *Grid) Center() Position {
	return Position{X: g.size / 2, Y: g.size / 2}
}

// FarthestCorner returns the corner furthest from p on each axis.
// Ties go to the far side, so the corner is never p itself on grids of size 2 or more.
func (g *Grid) FarthestCorner(p Position) Position {
	last := g.size - 1
	corner := Position{X: last, Y: last}
	if last-p.X < p.X {
		corner.X = 0
	}
	if last-p.Y < p.Y {
		corner.Y = 0
	}
	return corner
}

// Neighbours returns the in-bounds positions one step away from p, in direction order
func (g *Grid) Neighbours(p Position) []Position {
	var out []Position
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.IsValidPosition(n) {
			out = append(out, n)
		}
	}
	return out
}

// ForEach iterates over all rooms in row-major order
func (g *Grid) ForEach(fn func(p Position, r *Room)) {
	for i, r := range g.rooms {
		fn(Position{X: i % g.size, Y: i / g.size}, r)
	}
}
