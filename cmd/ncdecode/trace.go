package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	"github.com/mastercactapus/ncdecode/trace"
)

type traceOptions struct {
	*rootOptions
	Output  string
	Summary bool
}

func newTraceCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &traceOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Write the carried-forward X/Y/Z position of every line",
		Long: `Decode a program and write one row per line with the last known
X, Y and Z values. Axes that have not been set yet are left empty.

Output is delimited text with a "seq,x,y,z" header, written to
standard output unless --output is given. --summary prints the row
count, bounding box and travel length instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readProgram(cmd, args[0])
			if err != nil {
				return err
			}

			tr := trace.New()
			tr.Seed(opts.cfg.Trace.Start.Position())
			rows := tr.Trace(p)

			if opts.Summary {
				return writeSummary(cmd.OutOrStdout(), opts.Format, trace.Summarize(rows))
			}

			out := cmd.OutOrStdout()
			if opts.Output != "" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return usageError(err)
				}
				defer f.Close()
				out = f
			}

			w := trace.NewWriter(out)
			w.Precision = opts.cfg.Trace.Precision
			w.SetComma(opts.cfg.Trace.Comma())
			err = w.WriteAll(rows)
			if err != nil {
				return fmt.Errorf("write trace: %w", err)
			}
			glg.Debugf("wrote %d rows", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the trace to this file")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print a summary instead of the trace")

	return cmd
}

func writeSummary(w io.Writer, format string, s trace.Summary) error {
	ok, err := writeStructured(w, format, s)
	if ok || err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "rows: %d\ncomplete: %d\n", s.Rows, s.Complete)
	if err != nil || s.Complete == 0 {
		return err
	}
	_, err = fmt.Fprintf(w, "min: %g %g %g\nmax: %g %g %g\ntravel: %g\n",
		s.Min.X, s.Min.Y, s.Min.Z,
		s.Max.X, s.Max.Y, s.Max.Z,
		s.Travel,
	)
	return err
}
