package gcode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kpango/glg"
)

// DefaultCommentChars open a comment that runs to the end of the line.
const DefaultCommentChars = "(;"

// Decoder turns source text into instructions and lines.
//
// The zero value is ready to use: R is decoded as F, "(" and ";" open
// comments, and unrecognized codes are logged as warnings.
type Decoder struct {
	// DistinctR decodes R as its own code instead of an alias for F.
	DistinctR bool

	// CommentChars overrides DefaultCommentChars when non-empty.
	CommentChars string

	// Unrecognized is called for every dropped code. If nil, a warning
	// is logged.
	Unrecognized func(code, value string)
}

func (d *Decoder) commentChars() string {
	if d.CommentChars == "" {
		return DefaultCommentChars
	}
	return d.CommentChars
}

func (d *Decoder) unrecognized(code, value string) {
	if d.Unrecognized != nil {
		d.Unrecognized(code, value)
		return
	}
	glg.Warnf("unrecognized code: %s => %s", code, value)
}

// Decode builds the instruction for a single code/value pair.
//
// Errors match ErrUnrecognizedCode for letters outside the instruction
// set, and ErrMalformedValue when the value is not a number of the kind
// the code requires. Surrounding whitespace in value is ignored.
func (d *Decoder) Decode(code, value string) (Instruction, error) {
	if len(code) != 1 || !Code(code[0]).Valid() {
		return Instruction{}, &UnrecognizedCodeError{Code: code, Value: value}
	}
	c := Code(code[0])
	if c == R && !d.DistinctR {
		c = F
	}

	v := strings.TrimSpace(value)
	if c.IsInteger() {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Instruction{}, &ValueError{Code: code, Value: value, Err: err}
		}
		return NewInt(c, uint32(n)), nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Instruction{}, &ValueError{Code: code, Value: value, Err: err}
	}
	return NewFloat(c, f), nil
}

// ParseLine decodes one comment-free source line.
//
// N sets the line number, the last one winning. Unrecognized codes are
// reported through the Unrecognized hook and dropped.
func (d *Decoder) ParseLine(s string) (Line, error) {
	var ln Line
	pairs, err := Pairs(Tokenize(s))
	if err != nil {
		return ln, err
	}

	for _, p := range pairs {
		if p.Code == string(NumberCode) {
			n, err := strconv.ParseUint(strings.TrimSpace(p.Value), 10, 32)
			if err != nil {
				return Line{}, &ValueError{Code: p.Code, Value: p.Value, Err: err}
			}
			num := uint32(n)
			ln.Number = &num
			continue
		}

		in, err := d.Decode(p.Code, p.Value)
		if errors.Is(err, ErrUnrecognizedCode) {
			d.unrecognized(p.Code, p.Value)
			continue
		}
		if err != nil {
			return Line{}, err
		}
		ln.Instructions = append(ln.Instructions, in)
	}

	return ln, nil
}

// StripComment returns s up to the first comment opener.
func (d *Decoder) StripComment(s string) string {
	if i := strings.IndexAny(s, d.commentChars()); i >= 0 {
		return s[:i]
	}
	return s
}

// StripComment removes a trailing comment using DefaultCommentChars.
func StripComment(s string) string {
	var d Decoder
	return d.StripComment(s)
}

// source reports whether raw holds anything to decode after removing
// its comment, returning the remaining text.
func (d *Decoder) source(raw string) (string, bool) {
	s := d.StripComment(raw)
	t := strings.TrimSpace(s)
	if t == "" || t == "%" {
		return "", false
	}
	return s, true
}
