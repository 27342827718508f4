// Package generator builds perfect mazes: every room is reachable from every
// other room by exactly one simple path.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MinSize is the smallest accepted side length of a maze
const MinSize = 2

var (
	// ErrInvalidSize is returned when a maze is requested below MinSize
	ErrInvalidSize = errors.New("invalid maze size")
	// ErrUnknownPolicy is returned when a policy name cannot be parsed
	ErrUnknownPolicy = errors.New("unknown policy")
)

// StartPolicy selects the cell the player starts in and carving begins from
type StartPolicy int

// Start policies
const (
	StartOrigin StartPolicy = iota // top-left cell
	StartCenter                    // middle cell
)

func (p StartPolicy) String() string {
	switch p {
	case StartOrigin:
		return "origin"
	case StartCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseStartPolicy converts a configuration word into a StartPolicy
func ParseStartPolicy(s string) (StartPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "origin", "corner":
		return StartOrigin, nil
	case "center", "centre", "middle":
		return StartCenter, nil
	}
	return StartOrigin, fmt.Errorf("start policy %q: %w", s, ErrUnknownPolicy)
}

// EndPolicy selects which rooms finish the maze
type EndPolicy int

// End policies
const (
	EndOppositeCorner EndPolicy = iota // the grid corner farthest from the start
	EndBorder                          // every cell on the outer edge
)

func (p EndPolicy) String() string {
	switch p {
	case EndOppositeCorner:
		return "corner"
	case EndBorder:
		return "border"
	default:
		return "unknown"
	}
}

// ParseEndPolicy converts a configuration word into an EndPolicy
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corner", "opposite":
		return EndOppositeCorner, nil
	case "border", "edge":
		return EndBorder, nil
	}
	return EndOppositeCorner, fmt.Errorf("end policy %q: %w", s, ErrUnknownPolicy)
}

// Options configures a single maze generation
type Options struct {
	Size  int
	Start StartPolicy
	End   EndPolicy

	// Rand drives every random choice, descriptions included.
	// A nil Rand is replaced by a time-seeded source.
	Rand *rand.Rand
}

func (o Options) validate() error {
	if o.Size < MinSize {
		return fmt.Errorf("size %d is below the minimum of %d: %w", o.Size, MinSize, ErrInvalidSize)
	}
	return nil
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// MazeGenerator is an interface for maze carving algorithms
type MazeGenerator interface {
	Generate(opts Options) (*Maze, error)
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator MazeGenerator = Backtracker

// Build generates a maze with the default generator
func Build(size int, start StartPolicy, end EndPolicy, rng *rand.Rand) (*Maze, error) {
	return DefaultGenerator.Generate(Options{
		Size:  size,
		Start: start,
		End:   end,
		Rand:  rng,
	})
}
