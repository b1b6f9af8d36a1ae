package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var mergeEncrypt bool

func init() {
	cmd := newMergeCmd()
	cmd.Flags().BoolVarP(&mergeEncrypt, "encrypt", "e", false, "Encrypt the merged file")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <dst> <src|pattern>...",
		Short: "Concatenate config files into one",
		Long: `The merge command writes the decoded text of every source, in order, into
dst. Encrypted sources are deciphered with the key. Loading the result is
the same as loading the sources one after the other.

Example:
  orxconfig merge all.ini base.ini player.ini
  orxconfig merge all.dat "levels/**/*.ini" --encrypt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	dst := args[0]
	srcs, err := expandPatterns(args[1:])
	if err != nil {
		return err
	}

	s := newStore()
	var key []byte
	if mergeEncrypt {
		if key = s.GetEncryptionKey(); key == nil {
			return errors.New("--encrypt needs a key, drop --no-key")
		}
	}

	printVerbose("Merging into: %s\n", dst)
	printVerbose("Sources: %v\n", srcs)
	if err := s.MergeFiles(dst, srcs, key); err != nil {
		return fmt.Errorf("failed to merge into %s: %w", dst, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"dst":       dst,
			"sources":   srcs,
			"encrypted": mergeEncrypt,
			"success":   true,
		})
	}
	printInfo("%s Merged %d files into %s\n", styled(okStyle, "✓"), len(srcs), dst)
	return nil
}
