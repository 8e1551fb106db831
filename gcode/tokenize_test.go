package gcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	check := func(in string, exp ...string) {
		t.Helper()
		toks := Tokenize(in)
		assert.Equal(t, exp, toks, in)
		assert.Equal(t, in, strings.Join(toks, ""), "lossless split")
	}

	check("", "")
	check("X", "X", "")
	check("X1", "X", "1")
	check("N10 G01 X1.000 Y2.000", "N", "10 ", "G", "01 ", "X", "1.000 ", "Y", "2.000")
	check(" G0 ", " ", "G", "0 ")
	check("5X1", "5", "X", "1")
	check("XY1", "XY", "1")
	check("G1X-0.5Z", "G", "1", "X", "-0.5", "Z", "")
}

func TestPairs(t *testing.T) {
	p, err := Pairs(Tokenize("N10 G01"))
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Code: "N", Value: "10 "}, {Code: "G", Value: "01"}}, p)

	p, err = Pairs(Tokenize("  X1"))
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Code: "X", Value: "1"}}, p)

	p, err = Pairs(Tokenize("   "))
	assert.NoError(t, err)
	assert.Empty(t, p)

	_, err = Pairs(Tokenize("5X1"))
	assert.ErrorIs(t, err, ErrMalformedTokenStream)

	_, err = Pairs([]string{"X", "1", "Y"})
	assert.ErrorIs(t, err, ErrMalformedTokenStream)
}
