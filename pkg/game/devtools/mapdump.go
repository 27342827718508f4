// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"labyrinth/pkg/engine/pathfind"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
)

// DumpMazeToFile writes a full debug dump of the game to path and returns the
// absolute path written.
func DumpMazeToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMaze(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

// DumpMaze writes metadata, the plan with the player overlaid and every room
// with its doors. Format is human-readable (sections, key: value).
func DumpMaze(w io.Writer, g *state.Game) error {
	if g == nil || g.Maze == nil {
		return fmt.Errorf("no maze")
	}

	m := g.Maze
	grid := m.Grid()

	position := func(r *world.Room) string {
		p, ok := grid.PositionOf(r)
		if !ok {
			return "-"
		}
		return p.String()
	}

	var ends []string
	for _, r := range m.Ends() {
		ends = append(ends, position(r))
	}

	toExit := "none"
	if _, hops, ok := pathfind.NearestMatch(g.Current, (*world.Room).IsEnd); ok {
		toExit = fmt.Sprint(hops)
	}

	var b strings.Builder

	// --- Metadata ---
	fmt.Fprintln(&b, "=== MAZE DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "maze_id: %s\n", m.ID)
	fmt.Fprintf(&b, "size: %d\n", m.Size())
	fmt.Fprintf(&b, "rooms: %d\n", len(m.Rooms()))
	fmt.Fprintf(&b, "doors: %d\n", m.EdgeCount())
	fmt.Fprintf(&b, "coordinate_system: (x,y), 0-based, y grows southwards\n")
	fmt.Fprintf(&b, "start: %s\n", position(m.Start()))
	fmt.Fprintf(&b, "exits: %s\n", strings.Join(ends, " "))
	fmt.Fprintf(&b, "player: %s\n", position(g.Current))
	fmt.Fprintf(&b, "facing: %s\n", g.Facing)
	fmt.Fprintf(&b, "moves: %d\n", g.Moves)
	fmt.Fprintf(&b, "doors_to_exit: %s\n", toExit)
	fmt.Fprintf(&b, "finished: %v\n", g.Finished)
	fmt.Fprintf(&b, "won: %v\n", g.Won)
	fmt.Fprintln(&b, "")

	// --- Legend ---
	fmt.Fprintln(&b, "--- Legend ---")
	fmt.Fprintln(&b, "@ = player  S = start  E = exit  | and --- = walls")
	fmt.Fprintln(&b, "")

	// --- Map ---
	fmt.Fprintln(&b, "--- Map ---")
	b.WriteString(m.Plan(func(r *world.Room) byte {
		if r == g.Current {
			return '@'
		}
		return 0
	}))
	fmt.Fprintln(&b, "")

	// --- Rooms ---
	fmt.Fprintln(&b, "--- Rooms ---")
	grid.ForEach(func(p world.Position, r *world.Room) {
		var doors []string
		for _, d := range r.Exits() {
			doors = append(doors, d.String())
		}
		fmt.Fprintf(&b, "  id: %d pos: %s description: %q end: %v doors: %s\n",
			r.ID(), p, r.Description(), r.IsEnd(), strings.Join(doors, ","))
	})

	_, err := io.WriteString(w, b.String())
	return err
}
