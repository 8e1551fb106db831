package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mastercactapus/ncdecode/gcode"
)

type instructionDump struct {
	Code  string  `json:"code" yaml:"code"`
	Value float64 `json:"value" yaml:"value"`
}

type lineDump struct {
	Number       *uint32           `json:"number,omitempty" yaml:"number,omitempty"`
	Instructions []instructionDump `json:"instructions" yaml:"instructions"`
}

type programDump struct {
	Lines []lineDump `json:"lines" yaml:"lines"`
}

func dumpProgram(p gcode.Program) programDump {
	d := programDump{Lines: make([]lineDump, len(p.Lines))}
	for i, ln := range p.Lines {
		d.Lines[i].Number = ln.Number
		d.Lines[i].Instructions = make([]instructionDump, len(ln.Instructions))
		for j, in := range ln.Instructions {
			d.Lines[i].Instructions[j] = instructionDump{Code: in.Code().String(), Value: in.Value()}
		}
	}
	return d
}

// writeStructured writes v as YAML or JSON. It returns false for the
// text format, which callers render themselves.
func writeStructured(w io.Writer, format string, v interface{}) (bool, error) {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err != nil {
			return true, err
		}
		return true, enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	}
	return false, nil
}

func writeProgramText(w io.Writer, p gcode.Program) error {
	for i, ln := range p.Lines {
		num := "-"
		if ln.HasNumber() {
			num = fmt.Sprintf("N%d", *ln.Number)
		}
		ins := make([]string, len(ln.Instructions))
		for j, in := range ln.Instructions {
			ins[j] = in.String()
		}
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, num, strings.Join(ins, " "))
		if err != nil {
			return err
		}
	}
	return nil
}
