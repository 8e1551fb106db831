package gcode

import (
	"strconv"
	"strings"
)

// Line is one decoded source line.
type Line struct {
	// Number is the N-code value, or nil if the line has none.
	Number *uint32

	// Instructions in the order they appear in the source. Repeated
	// codes are all kept.
	Instructions []Instruction
}

func (l Line) HasNumber() bool { return l.Number != nil }

// Axis returns the last value given for c on this line.
func (l Line) Axis(c Code) (bool, float64) {
	ok, val := false, 0.0
	for _, in := range l.Instructions {
		if in.code == c {
			ok, val = true, in.Value()
		}
	}
	return ok, val
}

// Codes returns the instructions matching c.
func (l Line) Codes(c Code) []Instruction {
	var res []Instruction
	for _, in := range l.Instructions {
		if in.code == c {
			res = append(res, in)
		}
	}
	return res
}

func (l Line) Clone() Line {
	c := Line{Instructions: make([]Instruction, len(l.Instructions))}
	copy(c.Instructions, l.Instructions)
	if l.Number != nil {
		n := *l.Number
		c.Number = &n
	}
	return c
}

func (l Line) String() string {
	var sb strings.Builder
	if l.Number != nil {
		sb.WriteByte(NumberCode)
		sb.WriteString(strconv.FormatUint(uint64(*l.Number), 10))
	}
	for _, in := range l.Instructions {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(in.String())
	}
	return sb.String()
}

// Program is an ordered list of decoded lines.
type Program struct {
	Lines []Line
}

func (p Program) String() string {
	var sb strings.Builder
	for _, l := range p.Lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
