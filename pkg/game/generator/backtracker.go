package generator

import (
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"labyrinth/pkg/engine/world"
)

// Room descriptions, as message catalog keys
var roomDescriptions = []string{
	"ROOM_EMPTY",
	"ROOM_BATHROOM",
	"ROOM_WARM",
	"ROOM_WEAPONS",
	"ROOM_CONFUSING",
	"ROOM_GALLERY",
	"ROOM_TORTURE",
	"ROOM_BAD_AIR",
}

// BacktrackerGenerator carves a spanning tree with a randomized depth-first walk,
// backing up along an explicit stack whenever it reaches a dead end.
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a new maze
func (g *BacktrackerGenerator) Generate(opts Options) (*Maze, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := opts.rng()

	grid := world.NewGrid(opts.Size, func() string {
		return roomDescriptions[rng.Intn(len(roomDescriptions))]
	})

	startPos := startPosition(grid, opts.Start)
	start := grid.RoomAt(startPos)

	edges := g.carve(grid, start, rng)

	m := &Maze{
		ID:    uuid.New(),
		grid:  grid,
		start: start,
		edges: edges,
	}
	m.ends = markEnds(grid, startPos, opts.End)

	// Validate the generated maze
	if err := Validate(m); err != nil {
		panic("generated invalid maze: " + err.Error())
	}

	log.WithFields(log.Fields{
		"maze_id":   m.ID,
		"generator": g.Name(),
		"size":      opts.Size,
		"start":     startPos,
		"ends":      len(m.ends),
		"edges":     edges,
	}).Debug("Maze generated")

	return m, nil
}

// carve connects every room of the grid into a single tree rooted at start.
// It returns the number of doors created.
func (g *BacktrackerGenerator) carve(grid *world.Grid, start *world.Room, rng *rand.Rand) int {
	visited := mapset.New[*world.Room]()
	backtrack := stack.New[*world.Room]()

	current := start
	edges := 0

	for visited.Size() != grid.Len() {
		visited.Put(current)

		next := randomUnvisitedNeighbour(grid, current, &visited, rng)
		if next != nil {
			backtrack.Push(current)
			connect(grid, current, next)
			edges++
			current = next
			continue
		}

		if backtrack.Size() > 0 {
			current = backtrack.Pop()
			continue
		}

		if visited.Size() != grid.Len() {
			// a full grid is always connected, so an empty stack means every cell was reached
			panic("maze carving ran out of cells to backtrack to")
		}
	}

	return edges
}

// randomUnvisitedNeighbour picks one of the unvisited grid neighbours of r, or nil if there are none
func randomUnvisitedNeighbour(grid *world.Grid, r *world.Room, visited *mapset.Set[*world.Room], rng *rand.Rand) *world.Room {
	pos, _ := grid.PositionOf(r)

	var candidates []*world.Room
	for _, p := range grid.Neighbours(pos) {
		n := grid.RoomAt(p)
		if n != nil && !visited.Has(n) {
			candidates = append(candidates, n)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	return candidates[rng.Intn(len(candidates))]
}

// connect opens a door between two grid-adjacent rooms
func connect(grid *world.Grid, from, to *world.Room) {
	fromPos, _ := grid.PositionOf(from)
	toPos, _ := grid.PositionOf(to)

	there := mustDirection(fromPos, toPos)
	back := mustDirection(toPos, fromPos)
	if back != there.Opposite() {
		panic("inconsistent directions between " + fromPos.String() + " and " + toPos.String())
	}

	from.Connect(there, to)
}

// mustDirection returns the direction between two neighbouring positions.
// Callers only pass positions taken from Grid.Neighbours, so an error is a bug.
func mustDirection(from, to world.Position) world.Direction {
	dir, err := world.DirectionBetween(from, to)
	if err != nil {
		panic(err)
	}
	return dir
}

func startPosition(grid *world.Grid, policy StartPolicy) world.Position {
	switch policy {
	case StartCenter:
		return grid.Center()
	default:
		return grid.Origin()
	}
}

// markEnds flags the end rooms for the policy and returns them in row-major order
func markEnds(grid *world.Grid, startPos world.Position, policy EndPolicy) []*world.Room {
	var ends []*world.Room

	switch policy {
	case EndBorder:
		grid.ForEach(func(p world.Position, r *world.Room) {
			if grid.OnBorder(p) {
				r.MarkEnd()
				ends = append(ends, r)
			}
		})
	default:
		r := grid.RoomAt(grid.FarthestCorner(startPos))
		r.MarkEnd()
		ends = append(ends, r)
	}

	return ends
}
