package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orx/orx-sub008/pkg/printer"
)

var (
	dumpSection   string
	dumpKeysOnly  bool
	dumpNoFlags   bool
	dumpExpand    bool
	dumpMaxValLen int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpSection, "section", "s", "", "Dump only this section")
	cmd.Flags().BoolVar(&dumpKeysOnly, "keys-only", false, "Show key counts instead of values")
	cmd.Flags().BoolVar(&dumpNoFlags, "no-flags", false, "Hide list/random/inherited markers")
	cmd.Flags().BoolVar(&dumpExpand, "expand-lists", false, "Show list items separately")
	cmd.Flags().IntVar(&dumpMaxValLen, "max-value-len", 0, "Truncate values longer than this (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file|pattern>...",
		Short: "Print the merged contents of config files",
		Long: `The dump command loads the files, in order, into one store and prints it.
Later files override earlier ones. Patterns may use ** to match directories.

Example:
  orxconfig dump game.ini
  orxconfig dump base.ini "mods/**/*.ini" --format yaml
  orxconfig dump game.ini --section Player --json
  orxconfig dump secret.ini --format ini > plain.ini`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	s, err := openStore(files)
	if err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}
	opts := printer.DefaultOptions()
	opts.Format = format
	opts.ShowValues = !dumpKeysOnly
	opts.ShowFlags = !dumpNoFlags
	opts.ExpandLists = dumpExpand
	opts.MaxValueLen = dumpMaxValLen
	opts.Color = !noColor

	p := printer.New(s, os.Stdout, opts)
	if dumpSection != "" {
		return p.PrintSection(dumpSection)
	}
	return p.PrintAll()
}
