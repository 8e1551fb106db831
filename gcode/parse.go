package gcode

import (
	"io"
	"strings"
)

// ReadAll drains r into a Program, stopping at the first error.
func ReadAll(r Reader) (Program, error) {
	var p Program
	for {
		ln, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Program{}, err
		}
		p.Lines = append(p.Lines, ln)
	}
	return p, nil
}

// ReadProgram decodes all of r with d.
func (d *Decoder) ReadProgram(r io.Reader) (Program, error) {
	p := NewParser(r)
	p.Decoder = *d
	return ReadAll(p)
}

// ParseLines decodes already split source lines. Comments are removed
// and blank lines skipped; the first failing line aborts the parse.
func (d *Decoder) ParseLines(lines []string) (Program, error) {
	var p Program
	for i, raw := range lines {
		src, ok := d.source(raw)
		if !ok {
			continue
		}
		ln, err := d.ParseLine(src)
		if err != nil {
			return Program{}, &LineError{Line: i + 1, Text: raw, Err: err}
		}
		p.Lines = append(p.Lines, ln)
	}
	return p, nil
}

// Parse decodes a whole program with a default Decoder.
func Parse(data string) (Program, error) {
	var d Decoder
	return d.ReadProgram(strings.NewReader(data))
}

func MustParse(data string) Program {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}
