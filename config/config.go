// Package config loads ncdecode settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/mastercactapus/ncdecode/coord"
	"github.com/mastercactapus/ncdecode/gcode"
)

type Config struct {
	// CommentChars each open a comment that runs to the end of the line.
	CommentChars string `toml:"comment_chars"`

	// RAsFeed decodes R as F.
	RAsFeed bool `toml:"r_as_feed"`

	Trace Trace `toml:"trace"`
}

type Trace struct {
	Precision int    `toml:"precision"`
	Delimiter string `toml:"delimiter"`

	// Start pre-seeds the tracker. Axes left out stay unknown.
	Start Start `toml:"start"`
}

type Start struct {
	X *float64 `toml:"x"`
	Y *float64 `toml:"y"`
	Z *float64 `toml:"z"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		CommentChars: gcode.DefaultCommentChars,
		RAsFeed:      true,
		Trace: Trace{
			Precision: -1,
			Delimiter: ",",
		},
	}
}

// Load reads path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", keys[0].String())
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.CommentChars == "" {
		return errors.New("comment_chars must not be empty")
	}
	if c.Trace.Precision < -1 {
		return fmt.Errorf("trace.precision must be -1 or greater, got %d", c.Trace.Precision)
	}
	if utf8.RuneCountInString(c.Trace.Delimiter) != 1 {
		return fmt.Errorf("trace.delimiter must be a single character, got %q", c.Trace.Delimiter)
	}
	return nil
}

// Decoder returns a decoder using these settings.
func (c Config) Decoder() gcode.Decoder {
	return gcode.Decoder{
		CommentChars: c.CommentChars,
		DistinctR:    !c.RAsFeed,
	}
}

// Comma returns the trace field delimiter.
func (t Trace) Comma() rune {
	r, _ := utf8.DecodeRuneInString(t.Delimiter)
	return r
}

// Position converts the configured start into a tracker seed.
func (s Start) Position() coord.Position {
	var p coord.Position
	if s.X != nil {
		p.Set(coord.X, *s.X)
	}
	if s.Y != nil {
		p.Set(coord.Y, *s.Y)
	}
	if s.Z != nil {
		p.Set(coord.Z, *s.Z)
	}
	return p
}
