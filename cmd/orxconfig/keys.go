package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orx/orx-sub008/pkg/types"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> <section>",
		Short: "List the local keys of a section",
		Long: `The keys command lists the keys defined in a section, in file order.
Keys only reachable through a parent are not listed.

Example:
  orxconfig keys game.ini Player
  orxconfig keys game.ini Player --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	file, section := args[0], args[1]

	s, err := openStore([]string{file})
	if err != nil {
		return err
	}
	if !s.HasSection(section) {
		return fmt.Errorf("section %q: %w", section, types.ErrNotFound)
	}
	if err := s.SelectSection(section); err != nil {
		return err
	}

	keys := make([]string, 0, s.GetKeyCounter())
	for i := range s.GetKeyCounter() {
		keys = append(keys, s.GetKey(i))
	}

	if jsonOut {
		return printJSON(keys)
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}
