package coord

import "fmt"

// Axis selects one coordinate of a Position.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

var Axes = [...]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Position is a point where each axis may or may not be known yet.
// The zero value has every axis unknown.
type Position struct {
	val   [3]float64
	known [3]bool
}

// Set makes a known with value v.
func (p *Position) Set(a Axis, v float64) {
	p.val[a] = v
	p.known[a] = true
}

// Get returns the value of a and whether it is known.
func (p Position) Get(a Axis) (float64, bool) {
	return p.val[a], p.known[a]
}

func (p Position) Known(a Axis) bool { return p.known[a] }

// Complete reports whether all axes are known.
func (p Position) Complete() bool {
	return p.known[X] && p.known[Y] && p.known[Z]
}

// Point returns the position as a Point if all axes are known.
func (p Position) Point() (Point, bool) {
	return Point{X: p.val[X], Y: p.val[Y], Z: p.val[Z]}, p.Complete()
}

// Merge returns p with every known axis of o applied on top.
func (p Position) Merge(o Position) Position {
	for _, a := range Axes {
		if o.known[a] {
			p.Set(a, o.val[a])
		}
	}
	return p
}

func (p Position) String() string {
	s := ""
	for i, a := range Axes {
		if i > 0 {
			s += " "
		}
		if v, ok := p.Get(a); ok {
			s += fmt.Sprintf("%s=%g", a, v)
		} else {
			s += a.String() + "=?"
		}
	}
	return s
}
