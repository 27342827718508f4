package world

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"
)

func drawDirection(t *rapid.T, label string) Direction {
	return rapid.SampledFrom(AllDirections()).Draw(t, label)
}

func drawRelative(t *rapid.T, label string) Relative {
	return rapid.SampledFrom(AllRelatives()).Draw(t, label)
}

func TestDirection_String(t *testing.T) {
	want := map[Direction]string{North: "north", East: "east", South: "south", West: "west"}
	for d, name := range want {
		if got := d.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", d, got, name)
		}
	}
	if got := Direction(7).String(); got != "unknown" {
		t.Errorf("Direction(7).String() = %q, want \"unknown\"", got)
	}
}

func TestRelative_String(t *testing.T) {
	want := map[Relative]string{Straight: "straight", Left: "left", Right: "right", Back: "back"}
	for r, name := range want {
		if got := r.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", r, got, name)
		}
	}
}

func TestDirection_Rotation(t *testing.T) {
	cases := []struct {
		dir      Direction
		cw, ccw  Direction
		opposite Direction
	}{
		{North, East, West, South},
		{East, South, North, West},
		{South, West, East, North},
		{West, North, South, East},
	}
	for _, c := range cases {
		if got := c.dir.Clockwise(); got != c.cw {
			t.Errorf("%v.Clockwise() = %v, want %v", c.dir, got, c.cw)
		}
		if got := c.dir.CounterClockwise(); got != c.ccw {
			t.Errorf("%v.CounterClockwise() = %v, want %v", c.dir, got, c.ccw)
		}
		if got := c.dir.Opposite(); got != c.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", c.dir, got, c.opposite)
		}
	}
}

func TestRelativeTo_AllPairs(t *testing.T) {
	// Facing north: east is a clockwise step, west counter-clockwise.
	cases := []struct {
		facing, target Direction
		want           Relative
	}{
		{North, North, Straight},
		{North, East, Right},
		{North, South, Back},
		{North, West, Left},
		{West, North, Right},
		{West, South, Left},
		{South, North, Back},
		{East, North, Left},
	}
	for _, c := range cases {
		if got := RelativeTo(c.facing, c.target); got != c.want {
			t.Errorf("RelativeTo(%v, %v) = %v, want %v", c.facing, c.target, got, c.want)
		}
	}
}

func TestRelativeTo_SameDirectionIsStraight(t *testing.T) {
	for _, d := range AllDirections() {
		if got := RelativeTo(d, d); got != Straight {
			t.Errorf("RelativeTo(%v, %v) = %v, want straight", d, d, got)
		}
	}
}

func TestRelative_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		facing := drawDirection(t, "facing")
		rel := drawRelative(t, "relative")
		if got := RelativeTo(facing, rel.Absolute(facing)); got != rel {
			t.Fatalf("RelativeTo(%v, %v.Absolute(%v)) = %v", facing, rel, facing, got)
		}
	})
}

func TestRelative_AbsoluteIsInverseOfRelativeTo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		facing := drawDirection(t, "facing")
		target := drawDirection(t, "target")
		if got := RelativeTo(facing, target).Absolute(facing); got != target {
			t.Fatalf("RelativeTo(%v, %v).Absolute = %v", facing, target, got)
		}
	})
}

func TestRelative_DoubleBackIsIdentity(t *testing.T) {
	for _, f := range AllDirections() {
		if got := Back.Absolute(Back.Absolute(f)); got != f {
			t.Errorf("Back twice from %v = %v", f, got)
		}
	}
}

func TestParseRelative(t *testing.T) {
	for _, r := range AllRelatives() {
		got, ok := ParseRelative(" " + r.String() + " ")
		if !ok || got != r {
			t.Errorf("ParseRelative(%q) = %v, %v", r.String(), got, ok)
		}
	}
	if got, ok := ParseRelative("LEFT"); !ok || got != Left {
		t.Errorf("ParseRelative(\"LEFT\") = %v, %v, want left, true", got, ok)
	}
	if _, ok := ParseRelative("north"); ok {
		t.Error("ParseRelative(\"north\") ok = true, want false (absolute words are not relative)")
	}
}

func TestDirectionBetween_UnitSteps(t *testing.T) {
	origin := Position{X: 3, Y: 3}
	for _, d := range AllDirections() {
		got, err := DirectionBetween(origin, origin.Step(d))
		if err != nil {
			t.Fatalf("DirectionBetween(%v, %v) error: %v", origin, origin.Step(d), err)
		}
		if got != d {
			t.Errorf("DirectionBetween(%v, %v) = %v, want %v", origin, origin.Step(d), got, d)
		}
	}
}

func TestDirectionBetween_AtIntLimits(t *testing.T) {
	cases := []struct {
		origin, target Position
		want           Direction
	}{
		{Position{math.MaxInt - 1, 0}, Position{math.MaxInt, 0}, East},
		{Position{math.MinInt + 1, 0}, Position{math.MinInt, 0}, West},
		{Position{0, math.MaxInt - 1}, Position{0, math.MaxInt}, South},
		{Position{0, math.MinInt + 1}, Position{0, math.MinInt}, North},
	}
	for _, c := range cases {
		got, err := DirectionBetween(c.origin, c.target)
		if err != nil {
			t.Fatalf("DirectionBetween(%v, %v) error: %v", c.origin, c.target, err)
		}
		if got != c.want {
			t.Errorf("DirectionBetween(%v, %v) = %v, want %v", c.origin, c.target, got, c.want)
		}
	}
}

func TestDirectionBetween_ReverseIsOpposite(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 1, Y: 0}
	ab, err := DirectionBetween(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := DirectionBetween(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if Back.Absolute(ab) != ba {
		t.Errorf("DirectionBetween(a,b) = %v and (b,a) = %v, want opposites", ab, ba)
	}
}

func TestDirectionBetween_Invalid(t *testing.T) {
	cases := []struct {
		name           string
		origin, target Position
	}{
		{"equal", Position{0, 0}, Position{0, 0}},
		{"diagonal", Position{0, 0}, Position{1, 1}},
		{"two apart", Position{0, 0}, Position{2, 0}},
		{"far", Position{4, 1}, Position{0, 3}},
		{"int extremes on x", Position{math.MinInt, 0}, Position{math.MaxInt, 0}},
		{"int extremes on x reversed", Position{math.MaxInt, 0}, Position{math.MinInt, 0}},
		{"int extremes on y", Position{0, math.MinInt}, Position{0, math.MaxInt}},
		{"int extremes on y reversed", Position{0, math.MaxInt}, Position{0, math.MinInt}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DirectionBetween(c.origin, c.target)
			if !errors.Is(err, ErrNotAdjacent) {
				t.Errorf("DirectionBetween(%v, %v) error = %v, want ErrNotAdjacent", c.origin, c.target, err)
			}
		})
	}
}
