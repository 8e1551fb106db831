package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mastercactapus/ncdecode/gcode"
)

func newFormatCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format FILE",
		Short: "Print the program as normalized G-code",
		Long: `Decode a program and print it back with comments and blank lines
removed, one space between words and numbers in their shortest form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readProgram(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = io.Copy(cmd.OutOrStdout(), gcode.NewBuffer(&gcode.LinesReader{Lines: p.Lines}))
			return err
		},
	}
}
