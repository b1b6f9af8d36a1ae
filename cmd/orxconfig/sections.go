package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orx/orx-sub008/pkg/config"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file|pattern>...",
		Short: "List sections with their parents",
		Long: `The sections command loads the files, in order, and lists every section
with its parent and key count. Patterns may use ** to match directories.

Example:
  orxconfig sections game.ini
  orxconfig sections "levels/**/*.ini" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

// sectionInfo is the JSON form of one listed section.
type sectionInfo struct {
	Name      string `json:"name"`
	Parent    string `json:"parent,omitempty"`
	NoParent  bool   `json:"no_parent,omitempty"`
	Protected bool   `json:"protected,omitempty"`
	Keys      int    `json:"keys"`
}

func runSections(args []string) error {
	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	s, err := openStore(files)
	if err != nil {
		return err
	}

	infos := listSections(s)
	if jsonOut {
		return printJSON(infos)
	}
	for _, info := range infos {
		line := styled(nameStyle, info.Name)
		switch {
		case info.NoParent:
			line += " " + styled(parentStyle, "(no parent)")
		case info.Parent != "":
			line += " " + styled(parentStyle, "@ "+info.Parent)
		}
		if info.Protected {
			line += " " + styled(dimStyle, "protected")
		}
		line += " " + styled(dimStyle, fmt.Sprintf("[%d keys]", info.Keys))
		fmt.Println(line)
	}
	return nil
}

func listSections(s *config.Store) []sectionInfo {
	views := s.Snapshot()
	infos := make([]sectionInfo, 0, len(views))
	for _, v := range views {
		infos = append(infos, sectionInfo{
			Name:      v.Name,
			Parent:    v.Parent,
			NoParent:  v.NoParent,
			Protected: v.Protected,
			Keys:      len(v.Entries),
		})
	}
	return infos
}
