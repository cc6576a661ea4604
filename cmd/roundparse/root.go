package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/corpomate/cesimdash/internal/importer"
)

type options struct {
	showLog bool
	compact bool
	clock   clockwork.Clock
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{clock: clockwork.NewRealClock()}

	cmd := &cobra.Command{
		Use:           "roundparse <workbook.xlsx>",
		Short:         "Convert a CESIM round workbook to JSON",
		Long:          "Reads the first sheet of a CESIM results workbook and prints the bundle accepted by POST /rounds.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(args[0], opts, stdout, stderr)
			if err != nil {
				fmt.Fprintln(stderr, "roundparse:", err)
			}
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&opts.showLog, "log", false, "print the parse log to stderr")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print JSON on a single line")

	return cmd
}

func run(path string, opts *options, stdout, stderr io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bundle, err := importer.NewParser(opts.clock).Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if opts.showLog {
		for _, line := range bundle.Logs {
			fmt.Fprintln(stderr, line)
		}
	}

	enc := json.NewEncoder(stdout)
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(bundle)
}
