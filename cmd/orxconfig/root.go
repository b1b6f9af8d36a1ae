package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/orx/orx-sub008/internal/logger"
	"github.com/orx/orx-sub008/pkg/config"
	"github.com/orx/orx-sub008/pkg/printer"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	keyFlag   string
	noKey     bool
	formatArg string
	logDir    string
)

// appFs is the filesystem every command works on.
var appFs afero.Fs = afero.NewOsFs()

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "orxconfig",
	Short: "Inspect and edit orx config files",
	Long: `orxconfig reads, edits, encrypts and merges orx config files: sections
of key/value entries with inheritance, lists, random ranges and includes.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		closer, err := logger.Init(logger.Options{
			Enabled: verbose || logDir != "",
			Level:   level,
			LogDir:  logDir,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logCloser = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&keyFlag, "key", "", "Encryption key (default: built-in key)")
	rootCmd.PersistentFlags().BoolVar(&noKey, "no-key", false, "Use no encryption key at all")
	rootCmd.PersistentFlags().
		StringVarP(&formatArg, "format", "f", string(printer.FormatText), "Output format (text, json, ini, yaml, toml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write logs to a dated file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newStore creates a store over appFs with the key selected by the flags.
func newStore() *config.Store {
	return newStoreWith(storeOptions())
}

// storeOptions builds store options from the global flags.
func storeOptions() config.Options {
	opts := config.Options{Fs: appFs}
	if keyFlag != "" {
		opts.EncryptionKey = []byte(keyFlag)
	}
	return opts
}

func newStoreWith(opts config.Options) *config.Store {
	s := config.New(opts)
	if noKey {
		s.SetEncryptionKey(nil)
	}
	return s
}

// openStore loads files, in order, into a new store.
func openStore(files []string) (*config.Store, error) {
	s := newStore()
	for _, f := range files {
		printVerbose("Loading: %s\n", f)
		if err := s.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return s, nil
}

// outputFormat resolves --format, with --json taking precedence.
func outputFormat() (printer.Format, error) {
	if jsonOut {
		return printer.FormatJSON, nil
	}
	return printer.ParseFormat(formatArg)
}

// expandPatterns resolves glob patterns ("**" included) against appFs.
// Arguments without glob syntax are kept as given.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			files = append(files, pattern)
			continue
		}

		base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
		fsys := afero.NewIOFS(appFs)
		if base != "." {
			fsys = afero.NewIOFS(afero.NewBasePathFs(appFs, base))
		}
		matches, err := doublestar.Glob(fsys, pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		slices.Sort(matches)
		for _, m := range matches {
			if base != "." {
				m = base + "/" + m
			}
			files = append(files, filepath.FromSlash(m))
		}
	}
	return files, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
