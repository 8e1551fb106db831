package gcode

import (
	"strconv"
	"strings"
)

// Code is the letter identifying an instruction kind.
type Code byte

// Recognized instruction codes.
const (
	G Code = 'G'
	T Code = 'T'
	M Code = 'M'
	S Code = 'S'
	X Code = 'X'
	Y Code = 'Y'
	Z Code = 'Z'
	I Code = 'I'
	J Code = 'J'
	K Code = 'K'
	F Code = 'F'
	R Code = 'R'
)

// NumberCode is the letter that marks a line (sequence) number.
const NumberCode = 'N'

func (c Code) Valid() bool {
	switch c {
	case G, T, M, S, X, Y, Z, I, J, K, F, R:
		return true
	}
	return false
}

// IsInteger reports whether the code carries an unsigned integer payload.
func (c Code) IsInteger() bool {
	switch c {
	case G, T, M, S:
		return true
	}
	return false
}

func (c Code) IsAxis() bool {
	switch c {
	case X, Y, Z:
		return true
	}
	return false
}

func (c Code) String() string { return string(c) }

// Instruction is a single decoded code and its payload.
//
// The zero value is not a valid instruction; use NewInt, NewFloat
// or a Decoder to construct one.
type Instruction struct {
	code Code
	n    uint32
	f    float64
}

// NewInt returns an integer instruction. It panics if c does not carry
// an integer payload.
func NewInt(c Code, n uint32) Instruction {
	if !c.IsInteger() {
		panic("gcode: " + c.String() + " does not take an integer value")
	}
	return Instruction{code: c, n: n}
}

// NewFloat returns a floating-point instruction. It panics if c is not
// a recognized floating-point code.
func NewFloat(c Code, f float64) Instruction {
	if !c.Valid() || c.IsInteger() {
		panic("gcode: " + c.String() + " does not take a float value")
	}
	return Instruction{code: c, f: f}
}

func (in Instruction) Code() Code { return in.code }

// Int returns the integer payload and whether the instruction has one.
func (in Instruction) Int() (uint32, bool) {
	return in.n, in.code.IsInteger()
}

// Float returns the floating-point payload and whether the instruction has one.
func (in Instruction) Float() (float64, bool) {
	return in.f, !in.code.IsInteger()
}

// Value returns the payload widened to float64.
func (in Instruction) Value() float64 {
	if in.code.IsInteger() {
		return float64(in.n)
	}
	return in.f
}

func formatFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
	}
	return strings.TrimRight(s, ".")
}

func (in Instruction) String() string {
	if in.code.IsInteger() {
		return in.code.String() + strconv.FormatUint(uint64(in.n), 10)
	}
	return in.code.String() + formatFloat(in.f, -1)
}
