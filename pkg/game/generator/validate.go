package generator

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"labyrinth/pkg/engine/world"
)

// ErrInvalidMaze is returned by Validate when a maze is not a perfect maze
var ErrInvalidMaze = errors.New("invalid maze")

// Validate checks that the maze is a spanning tree over its grid: every door has a
// matching door back, there are exactly rooms-1 doors, no cycles and one component.
func Validate(m *Maze) error {
	if m == nil || m.grid == nil {
		return fmt.Errorf("%w: no grid", ErrInvalidMaze)
	}
	if m.start == nil {
		return fmt.Errorf("%w: no start room", ErrInvalidMaze)
	}
	if len(m.ends) == 0 {
		return fmt.Errorf("%w: no end room", ErrInvalidMaze)
	}

	rooms := m.grid.Rooms()
	sets := make(map[*world.Room]*disjoint.Element, len(rooms))
	for _, r := range rooms {
		sets[r] = disjoint.NewElement()
	}

	edges := 0
	for _, r := range rooms {
		for _, dir := range r.Exits() {
			n := r.ExitTo(dir)

			if n.ExitTo(dir.Opposite()) != r {
				return fmt.Errorf("%w: door %v of room %d has no way back", ErrInvalidMaze, dir, r.ID())
			}
			if _, ok := sets[n]; !ok {
				return fmt.Errorf("%w: room %d leads out of the grid", ErrInvalidMaze, r.ID())
			}

			// count each two-way door once
			if r.ID() > n.ID() {
				continue
			}
			edges++

			if sets[r].Find() == sets[n].Find() {
				return fmt.Errorf("%w: cycle through rooms %d and %d", ErrInvalidMaze, r.ID(), n.ID())
			}
			disjoint.Union(sets[r], sets[n])
		}
	}

	if edges != len(rooms)-1 {
		return fmt.Errorf("%w: %d doors for %d rooms", ErrInvalidMaze, edges, len(rooms))
	}

	root := sets[m.start].Find()
	for _, r := range rooms {
		if sets[r].Find() != root {
			return fmt.Errorf("%w: room %d is unreachable", ErrInvalidMaze, r.ID())
		}
	}

	return nil
}
