package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAdjacent is returned when a direction is requested between two positions
// that are not a single axis-aligned step apart.
var ErrNotAdjacent = errors.New("positions are not adjacent")

// Direction represents an absolute compass direction
type Direction int

// Direction constants. The order is the fixed cyclic index: adding one turns clockwise.
const (
	North Direction = iota
	East
	South
	West
)

const directionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the lowercase name used in user-facing text and input
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Index returns the cyclic index of the direction (north=0 ... west=3)
func (d Direction) Index() int {
	return int(d)
}

// turn rotates the direction by n quarter turns clockwise (negative n turns counter-clockwise)
func (d Direction) turn(n int) Direction {
	return Direction(((int(d)+n)%directionCount + directionCount) % directionCount)
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return d.turn(2)
}

// Clockwise returns the direction one quarter turn to the right
func (d Direction) Clockwise() Direction {
	return d.turn(1)
}

// CounterClockwise returns the direction one quarter turn to the left
func (d Direction) CounterClockwise() Direction {
	return d.turn(-1)
}

// Delta returns the x and y offsets for this direction. North decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Position is a cell coordinate on the generation grid
type Position struct {
	X int
	Y int
}

// Step returns the position one unit away in the given direction
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DirectionBetween returns the direction pointing from origin to target.
// The positions must be exactly one step apart along a single axis.
func DirectionBetween(origin, target Position) (Direction, error) {
	switch {
	case origin.X == target.X && justBelow(target.Y, origin.Y):
		return North, nil
	case origin.Y == target.Y && justBelow(origin.X, target.X):
		return East, nil
	case origin.X == target.X && justBelow(origin.Y, target.Y):
		return South, nil
	case origin.Y == target.Y && justBelow(target.X, origin.X):
		return West, nil
	}

	return North, fmt.Errorf("direction from %v to %v: %w", origin, target, ErrNotAdjacent)
}

// justBelow reports whether b == a+1. a+1 is only evaluated when a < b, so it cannot overflow.
func justBelow(a, b int) bool {
	return a < b && a+1 == b
}

// Relative is a direction expressed against the way the player is facing
type Relative int

// Relative direction constants
const (
	Straight Relative = iota
	Left
	Right
	Back
)

// AllRelatives returns all relative directions for iteration
func AllRelatives() []Relative {
	return []Relative{Straight, Left, Right, Back}
}

// String returns the lowercase word the player types for this direction
func (r Relative) String() string {
	switch r {
	case Straight:
		return "straight"
	case Left:
		return "left"
	case Right:
		return "right"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// ParseRelative converts a player word into a relative direction
func ParseRelative(word string) (Relative, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, r := range AllRelatives() {
		if r.String() == word {
			return r, true
		}
	}
	return Straight, false
}

// RelativeTo returns how target looks to someone facing the given direction
func RelativeTo(facing, target Direction) Relative {
	switch (target.Index() - facing.Index() + directionCount) % directionCount {
	case 0:
		return Straight
	case 1:
		return Right
	case 2:
		return Back
	default:
		return Left
	}
}

// Absolute turns a relative direction into a compass direction for the given facing
func (r Relative) Absolute(facing Direction) Direction {
	switch r {
	case Back:
		return facing.Opposite()
	case Right:
		return facing.Clockwise()
	case Left:
		return facing.CounterClockwise()
	default:
		return facing
	}
}
