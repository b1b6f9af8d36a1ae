package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/orx/orx-sub008/internal/logger"
	"github.com/orx/orx-sub008/internal/watcher"
	"github.com/orx/orx-sub008/pkg/config"
	"github.com/orx/orx-sub008/pkg/printer"
	"github.com/orx/orx-sub008/pkg/types"
)

var (
	watchDebounce time.Duration
	watchPrint    bool
)

func init() {
	cmd := newWatchCmd()
	cmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before reloading")
	cmd.Flags().BoolVarP(&watchPrint, "print", "p", false, "Print the store after every reload")
	rootCmd.AddCommand(cmd)
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <main.ini> [file...]",
		Short: "Reload config files when they change",
		Long: `The watch command initializes a store from the main file, loads the other
files and reloads everything whenever one of them changes. With History
enabled in the [Config] section the load history is replayed, otherwise the
main file and the listed files are loaded again.

Example:
  orxconfig watch game.ini
  orxconfig watch game.ini mods/extra.ini --print --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args)
		},
	}
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	mainFile, extras := args[0], args[1:]
	if !strings.HasSuffix(strings.ToLower(mainFile), config.FileExtension) {
		return fmt.Errorf("main file must end in %s", config.FileExtension)
	}

	s, err := initWatchedStore(mainFile, extras)
	if err != nil {
		return err
	}
	if err := reportReload(s); err != nil {
		return err
	}

	w, err := watcher.New(watcher.Options{Debounce: watchDebounce, Logger: logger.L})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	for _, f := range watchedFiles(s, extras) {
		if err := w.Add(f); err != nil {
			return fmt.Errorf("failed to watch %s: %w", f, err)
		}
	}
	printInfo("Watching %d files, press Ctrl+C to stop\n", len(w.Files()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return w.Run(ctx, func(paths []string) {
		printVerbose("Changed: %v\n", paths)
		if err := reloadStore(s, extras); err != nil {
			logger.Warn("config reload failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: reload failed: %v\n", err)
			return
		}
		if err := reportReload(s); err != nil {
			logger.Warn("printing reloaded config failed", "error", err)
		}
	})
}

// initWatchedStore runs Init on main and loads extras after it.
func initWatchedStore(mainFile string, extras []string) (*config.Store, error) {
	s := newStore()
	if err := s.SetBaseName(mainFile); err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", mainFile, err)
	}
	for _, f := range extras {
		if err := s.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return s, nil
}

// reloadStore replays the load history when it is enabled, or clears the
// store and loads the main file and extras again.
func reloadStore(s *config.Store, extras []string) error {
	if s.HistoryEnabled() {
		return s.ReloadHistory()
	}
	if err := s.Clear(); err != nil {
		return err
	}
	mainFile := s.GetMainFileName()
	if err := s.Load(mainFile); err != nil && !errors.Is(err, types.ErrNotFound) {
		return err
	}
	for _, f := range extras {
		if err := s.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// watchedFiles lists the main file, extras and recorded history, once each.
func watchedFiles(s *config.Store, extras []string) []string {
	seen := make(map[string]bool)
	var files []string
	for _, group := range [][]string{{s.GetMainFileName()}, extras, s.History()} {
		for _, f := range group {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files
}

func reportReload(s *config.Store) error {
	printInfo("%s %s loaded: %d sections\n",
		styled(dimStyle, time.Now().Format(time.TimeOnly)), s.GetMainFileName(), s.GetSectionCount())
	if !watchPrint {
		return nil
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}
	opts := printer.DefaultOptions()
	opts.Format = format
	opts.Color = !noColor
	return printer.New(s, os.Stdout, opts).PrintAll()
}
