package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	"github.com/mastercactapus/ncdecode/config"
	"github.com/mastercactapus/ncdecode/gcode"
)

var validFormats = []string{"text", "yaml", "json"}

type rootOptions struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	Format     string

	cfg config.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ncdecode",
		Short: "Decode NC/G-code programs",
		Long: `Decode NC/G-code program text into instructions and derive
a carried-forward X/Y/Z position trace from it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)

			if !isValidFormat(opts.Format) {
				return usageError(fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats))
			}

			opts.cfg = config.Default()
			if opts.ConfigPath == "" {
				return nil
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return usageError(err)
			}
			opts.cfg = cfg
			glg.Debugf("loaded config from %s", opts.ConfigPath)
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "do not report unrecognized codes")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml|json)")

	cmd.AddCommand(newDecodeCommand(opts))
	cmd.AddCommand(newTraceCommand(opts))
	cmd.AddCommand(newFormatCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	l := glg.Get().SetMode(glg.WRITER).SetWriter(w).DisableColor()
	if !verbose {
		l.SetLevelMode(glg.DEBG, glg.NONE)
	}
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (opts *rootOptions) decoder() gcode.Decoder {
	d := opts.cfg.Decoder()
	if opts.Quiet {
		d.Unrecognized = func(code, value string) {}
	}
	return d
}

// readProgram loads all of name ("-" for stdin) before decoding it.
func (opts *rootOptions) readProgram(cmd *cobra.Command, name string) (gcode.Program, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return gcode.Program{}, usageError(fmt.Errorf("read program: %w", err))
	}

	d := opts.decoder()
	p, err := d.ReadProgram(bytes.NewReader(data))
	if err != nil {
		return gcode.Program{}, fmt.Errorf("decode %s: %w", name, err)
	}
	glg.Debugf("decoded %d lines from %s", len(p.Lines), name)
	return p, nil
}
