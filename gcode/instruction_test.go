package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	for _, c := range "GTMSXYZIJKFR" {
		assert.True(t, Code(c).Valid(), string(c))
	}
	for _, c := range "NQPABCgx" {
		assert.False(t, Code(c).Valid(), string(c))
	}
	assert.True(t, G.IsInteger())
	assert.False(t, F.IsInteger())
	assert.True(t, Z.IsAxis())
	assert.False(t, I.IsAxis())
}

func TestInstruction(t *testing.T) {
	g := NewInt(G, 1)
	n, ok := g.Int()
	assert.True(t, ok)
	assert.EqualValues(t, 1, n)
	_, ok = g.Float()
	assert.False(t, ok)
	assert.Equal(t, 1.0, g.Value())
	assert.Equal(t, "G1", g.String())

	x := NewFloat(X, 1.25)
	f, ok := x.Float()
	assert.True(t, ok)
	assert.Equal(t, 1.25, f)
	assert.Equal(t, "X1.25", x.String())
	assert.Equal(t, "Y-0.5", NewFloat(Y, -.5).String())

	assert.Panics(t, func() { NewInt(X, 1) })
	assert.Panics(t, func() { NewFloat(G, 1) })
	assert.Panics(t, func() { NewFloat(Code('Q'), 1) })
}

func TestLine(t *testing.T) {
	n := uint32(7)
	l := Line{Number: &n, Instructions: []Instruction{NewFloat(X, 5), NewInt(G, 1), NewFloat(X, 7)}}

	ok, x := l.Axis(X)
	assert.True(t, ok)
	assert.Equal(t, 7.0, x)
	ok, _ = l.Axis(Y)
	assert.False(t, ok)
	assert.Len(t, l.Codes(X), 2)
	assert.Equal(t, "N7 X5 G1 X7", l.String())

	c := l.Clone()
	*c.Number = 8
	c.Instructions[0] = NewFloat(X, 1)
	assert.EqualValues(t, 7, *l.Number)
	assert.Equal(t, NewFloat(X, 5), l.Instructions[0])
}
