package gcode

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedCode is matched by errors for letters outside the
	// instruction set. It is not fatal to a parse.
	ErrUnrecognizedCode = errors.New("unrecognized code")

	// ErrMalformedValue is matched by errors for a recognized code whose
	// value text is not a valid number of the expected kind.
	ErrMalformedValue = errors.New("malformed value")

	// ErrMalformedTokenStream is matched by errors for lines that do not
	// split into code/value pairs.
	ErrMalformedTokenStream = errors.New("malformed token stream")
)

type UnrecognizedCodeError struct {
	Code  string
	Value string
}

func (e *UnrecognizedCodeError) Error() string {
	return fmt.Sprintf("unrecognized code: %s => %s", e.Code, e.Value)
}
func (e *UnrecognizedCodeError) Is(target error) bool { return target == ErrUnrecognizedCode }

// ValueError reports value text that failed numeric parsing.
type ValueError struct {
	Code  string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("malformed value for %s: %q: %v", e.Code, e.Value, e.Err)
}
func (e *ValueError) Is(target error) bool { return target == ErrMalformedValue }
func (e *ValueError) Unwrap() error        { return e.Err }

type TokenStreamError struct {
	Tokens []string
	Reason string
}

func (e *TokenStreamError) Error() string {
	return fmt.Sprintf("malformed token stream: %s: %q", e.Reason, e.Tokens)
}
func (e *TokenStreamError) Is(target error) bool { return target == ErrMalformedTokenStream }

// LineError attaches the source position and raw text of the line that
// failed to decode.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}
func (e *LineError) Unwrap() error { return e.Err }
