package trace

import (
	"io"

	"github.com/mastercactapus/ncdecode/coord"
	"github.com/mastercactapus/ncdecode/gcode"
)

// Row is the known tool position after a line has been applied.
type Row struct {
	Seq int
	coord.Position
}

// Tracker carries the last known value of each axis forward from line
// to line.
type Tracker struct {
	pos coord.Position
	seq int
}

// New returns a Tracker with every axis unknown.
func New() *Tracker {
	return &Tracker{}
}

// Seed makes the known axes of p the starting position. It must be
// called before the first line is applied.
func (t *Tracker) Seed(p coord.Position) {
	t.pos = t.pos.Merge(p)
}

func axisOf(c gcode.Code) (coord.Axis, bool) {
	switch c {
	case gcode.X:
		return coord.X, true
	case gcode.Y:
		return coord.Y, true
	case gcode.Z:
		return coord.Z, true
	}
	return 0, false
}

// Apply updates the running position from ln and returns a snapshot.
// When a line repeats an axis the last value wins.
func (t *Tracker) Apply(ln gcode.Line) Row {
	for _, in := range ln.Instructions {
		if a, ok := axisOf(in.Code()); ok {
			t.pos.Set(a, in.Value())
		}
	}

	r := Row{Seq: t.seq, Position: t.pos}
	t.seq++
	return r
}

// Position returns the current running position.
func (t *Tracker) Position() coord.Position { return t.pos }

// Trace returns one row per line of p.
func (t *Tracker) Trace(p gcode.Program) []Row {
	rows := make([]Row, 0, len(p.Lines))
	for _, ln := range p.Lines {
		rows = append(rows, t.Apply(ln))
	}
	return rows
}

// Stream applies every line from r, passing each row to fn. It stops at
// the first error from r or fn; io.EOF from r ends the stream cleanly.
func (t *Tracker) Stream(r gcode.Reader, fn func(Row) error) error {
	for {
		ln, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		err = fn(t.Apply(ln))
		if err != nil {
			return err
		}
	}
}

// Program is a convenience for New().Trace(p).
func Program(p gcode.Program) []Row {
	return New().Trace(p)
}
