package gcode

import (
	"bufio"
	"io"
	"strings"
)

// Parser reads and decodes lines from an io.Reader one at a time.
type Parser struct {
	Decoder

	br *bufio.Reader
	n  int
}

var _ Reader = &Parser{}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

// LineNumber returns the physical (1-based) number of the last source
// line read.
func (p *Parser) LineNumber() int { return p.n }

// Read returns the next non-empty line. Decoding failures are returned
// as *LineError.
func (p *Parser) Read() (Line, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return Line{}, err
		}
		p.n++

		raw := strings.TrimRight(s, "\r\n")
		src, ok := p.source(raw)
		if !ok {
			continue
		}

		ln, err := p.ParseLine(src)
		if err != nil {
			return Line{}, &LineError{Line: p.n, Text: raw, Err: err}
		}
		return ln, nil
	}
}
