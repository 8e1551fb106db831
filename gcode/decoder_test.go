package gcode

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	var d Decoder

	in, err := d.Decode("G", "01 ")
	require.NoError(t, err)
	assert.Equal(t, NewInt(G, 1), in)

	in, err = d.Decode("Z", "-0.125")
	require.NoError(t, err)
	assert.Equal(t, NewFloat(Z, -0.125), in)

	in, err = d.Decode("R", "2.5")
	require.NoError(t, err)
	assert.Equal(t, F, in.Code())

	d.DistinctR = true
	in, err = d.Decode("R", "2.5")
	require.NoError(t, err)
	assert.Equal(t, R, in.Code())

	_, err = d.Decode("Q", "5")
	assert.ErrorIs(t, err, ErrUnrecognizedCode)
	assert.EqualError(t, err, "unrecognized code: Q => 5")

	_, err = d.Decode("x", "5")
	assert.ErrorIs(t, err, ErrUnrecognizedCode)

	_, err = d.Decode("GX", "5")
	assert.ErrorIs(t, err, ErrUnrecognizedCode)

	_, err = d.Decode("G", "1.5")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = d.Decode("S", "-100")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = d.Decode("X", "")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = d.Decode("X", "1 0")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestDecoder_DecodeRoundTrip(t *testing.T) {
	var d Decoder
	for _, c := range []Code{G, T, M, S} {
		for _, n := range []uint32{0, 1, 42, 65535, math.MaxUint32} {
			in, err := d.Decode(c.String(), fmt.Sprint(n))
			require.NoError(t, err)
			v, ok := in.Int()
			assert.True(t, ok)
			assert.Equal(t, n, v)
		}
	}
	for _, c := range []Code{X, Y, Z, I, J, K, F} {
		for _, f := range []float64{0, 1, -1.5, 0.001, 1234.5678, -99999.25} {
			in, err := d.Decode(c.String(), fmt.Sprint(f))
			require.NoError(t, err)
			v, ok := in.Float()
			assert.True(t, ok)
			assert.InDelta(t, f, v, 1e-9)

			again, err := d.Decode(c.String(), in.String()[1:])
			require.NoError(t, err)
			assert.Equal(t, in, again)
		}
	}
}

func TestDecoder_ParseLine(t *testing.T) {
	var unknown []string
	d := Decoder{Unrecognized: func(code, value string) { unknown = append(unknown, code+"="+value) }}

	ln, err := d.ParseLine("N10 G01 X1.000 Y2.000")
	require.NoError(t, err)
	require.True(t, ln.HasNumber())
	assert.EqualValues(t, 10, *ln.Number)
	assert.Equal(t, []Instruction{NewInt(G, 1), NewFloat(X, 1), NewFloat(Y, 2)}, ln.Instructions)

	ln, err = d.ParseLine("X5.0 X7.0")
	require.NoError(t, err)
	assert.False(t, ln.HasNumber())
	assert.Equal(t, []Instruction{NewFloat(X, 5), NewFloat(X, 7)}, ln.Instructions)

	ln, err = d.ParseLine("G0 Q5 X1")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{NewInt(G, 0), NewFloat(X, 1)}, ln.Instructions)
	assert.Equal(t, []string{"Q=5 "}, unknown)

	ln, err = d.ParseLine("N1 N2 G0")
	require.NoError(t, err)
	assert.EqualValues(t, 2, *ln.Number)

	ln, err = d.ParseLine("")
	require.NoError(t, err)
	assert.False(t, ln.HasNumber())
	assert.Empty(t, ln.Instructions)

	_, err = d.ParseLine("X")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = d.ParseLine("NX1")
	assert.NoError(t, err, "NX is a single unrecognized code")

	_, err = d.ParseLine("N G1")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = d.ParseLine("10 G1")
	assert.ErrorIs(t, err, ErrMalformedTokenStream)
}

func TestStripComment(t *testing.T) {
	for _, s := range []string{"G0 X1 (rapid)", "G0 X1 ; rapid", "(only)", "G1 X2", "", "X1 (a) (b)"} {
		once := StripComment(s)
		assert.NotContains(t, once, "(")
		assert.NotContains(t, once, ";")
		assert.Equal(t, once, StripComment(once), "idempotent")
	}
	assert.Equal(t, "G0 X1 ", StripComment("G0 X1 (rapid)"))

	d := Decoder{CommentChars: "("}
	assert.Equal(t, "G0 ; X1 ", d.StripComment("G0 ; X1 (c)"))
}
