package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orx/orx-sub008/pkg/config"
	"github.com/orx/orx-sub008/pkg/types"
)

var (
	setBlock   bool
	setAppend  bool
	setDelete  bool
	setParent  string
	setEncrypt bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setBlock, "block", false, "Store the value verbatim, without list or range parsing")
	cmd.Flags().BoolVarP(&setAppend, "append", "a", false, "Append the values to an existing list")
	cmd.Flags().BoolVarP(&setDelete, "delete", "d", false, "Delete the key instead of setting it")
	cmd.Flags().StringVar(&setParent, "parent", "", "Also set the section parent (\"@\" for none)")
	cmd.Flags().BoolVarP(&setEncrypt, "encrypt", "e", false, "Save the file encrypted")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section> <key> [value...]",
		Short: "Set, append or delete a value",
		Long: `The set command changes one key and saves the file. Several values are
stored as a list. A missing file is created. Include lines are kept as they
are, included files are neither read nor rewritten.

Example:
  orxconfig set game.ini Player Speed 12.5
  orxconfig set game.ini Player Weapons Sword Axe Bow
  orxconfig set game.ini Player Weapons Spear --append
  orxconfig set game.ini Player Motto "a # b" --block
  orxconfig set game.ini Player Speed --delete`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	file, section, key, values := args[0], args[1], args[2], args[3:]

	switch {
	case setDelete && len(values) > 0:
		return errors.New("--delete takes no value")
	case !setDelete && len(values) == 0:
		return errors.New("missing value")
	case setBlock && len(values) > 1:
		return errors.New("--block takes a single value")
	case setBlock && setAppend:
		return errors.New("--block and --append cannot be combined")
	}

	// includes stay as include lines in the saved file
	opts := storeOptions()
	opts.KeepIncludes = true
	s := newStoreWith(opts)
	if err := s.Load(file); err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		printVerbose("Creating: %s\n", file)
	}

	if err := s.SelectSection(section); err != nil {
		return err
	}
	if setParent != "" {
		if err := s.SetParent(section, setParent); err != nil {
			return fmt.Errorf("failed to set parent: %w", err)
		}
	}
	if err := applySet(s, key, values); err != nil {
		return err
	}

	if err := s.Save(file, setEncrypt, nil); err != nil {
		return fmt.Errorf("failed to save %s: %w", file, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":    file,
			"section": section,
			"key":     key,
			"deleted": setDelete,
			"success": true,
		})
	}
	action := "set"
	switch {
	case setDelete:
		action = "deleted"
	case setAppend:
		action = "appended"
	}
	printInfo("%s %s.%s %s\n", styled(okStyle, "✓"), section, key, action)
	return nil
}

func applySet(s *config.Store, key string, values []string) error {
	var err error
	switch {
	case setDelete:
		err = s.ClearValue(key)
	case setAppend:
		err = s.AppendListString(key, values)
	case setBlock:
		err = s.SetStringBlock(key, values[0])
	case len(values) > 1:
		err = s.SetStringList(key, values)
	default:
		err = s.SetString(key, values[0])
	}
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}
	return nil
}
