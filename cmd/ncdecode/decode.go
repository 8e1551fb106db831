package main

import (
	"github.com/spf13/cobra"
)

func newDecodeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Dump the decoded program",
		Long: `Decode a program and print one entry per line.

The text format prints the line index, the N-code (or "-") and the
decoded instructions. Use --format yaml or json for structured output.
FILE may be "-" to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readProgram(cmd, args[0])
			if err != nil {
				return err
			}

			ok, err := writeStructured(cmd.OutOrStdout(), opts.Format, dumpProgram(p))
			if ok || err != nil {
				return err
			}
			return writeProgramText(cmd.OutOrStdout(), p)
		},
	}
}
