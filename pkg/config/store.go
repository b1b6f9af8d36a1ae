package config

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/spf13/afero"

	"github.com/orx/orx-sub008/internal/cfgtext"
	"github.com/orx/orx-sub008/internal/cipher"
	"github.com/orx/orx-sub008/internal/index"
	"github.com/orx/orx-sub008/internal/logger"
	"github.com/orx/orx-sub008/internal/value"
	"github.com/orx/orx-sub008/pkg/types"
)

const (
	// DefaultBaseName names the main file, GetMainFileName appends FileExtension.
	DefaultBaseName = "orx"

	// FileExtension is the extension of the main file.
	FileExtension = ".ini"

	// DefaultMaxInheritanceDepth bounds reference and parent chains.
	DefaultMaxInheritanceDepth = 64

	// ConfigSection is the store's own section, read by Init.
	ConfigSection = "Config"

	// HistoryKey enables load history when true in ConfigSection.
	HistoryKey = "History"

	// ParentNone passed to SetParent forces a section to have no parent,
	// not even the default one.
	ParentNone = "@"
)

// Options configures a Store.
type Options struct {
	// Fs is the filesystem files are loaded from and saved to.
	// Default: afero.NewOsFs()
	Fs afero.Fs

	// BaseName is the main file name without extension.
	// Default: DefaultBaseName
	BaseName string

	// EncryptionKey deciphers tagged files and enciphers encrypted saves.
	// Default: cipher.DefaultKey
	EncryptionKey []byte

	// Logger receives diagnostics.
	// Default: logger.L
	Logger *slog.Logger

	// Rand is the source for random list items and ranges.
	// Default: the math/rand/v2 global source
	Rand *rand.Rand

	// ChunkSize is the load buffer size, also the longest accepted line.
	// Default: cfgtext.DefaultChunkSize
	ChunkSize int

	// MaxInheritanceDepth bounds reference and parent chains, deeper
	// lookups are reported as cycles.
	// Default: DefaultMaxInheritanceDepth
	MaxInheritanceDepth int

	// KeepIncludes records include lines instead of loading them, and
	// Save writes them back where they were read. Use it to edit a file
	// without flattening its includes into it.
	// Default: false
	KeepIncludes bool
}

// DefaultOptions returns the options New uses for zero fields.
func DefaultOptions() Options {
	return Options{
		Fs:                  afero.NewOsFs(),
		BaseName:            DefaultBaseName,
		EncryptionKey:       []byte(cipher.DefaultKey),
		Logger:              logger.L,
		ChunkSize:           cfgtext.DefaultChunkSize,
		MaxInheritanceDepth: DefaultMaxInheritanceDepth,
	}
}

// Store is a configuration context: its sections, the current section and
// section stack, the encryption key and the load history.
//
// A Store is not safe for concurrent use.
type Store struct {
	fs       afero.Fs
	log      *slog.Logger
	rnd      *rand.Rand
	chunk    int
	maxDepth int

	sections []*section
	index    index.Index[*section]
	current  *section
	stack    []*section

	key           []byte
	baseName      string
	defaultParent string

	keepIncludes bool
	includes     []includeLine

	loading          int
	history          []string
	historyOn        bool
	historySuspended bool
	ready            bool
}

// New creates a store. Zero option fields take their DefaultOptions value.
func New(opts Options) *Store {
	def := DefaultOptions()
	if opts.Fs == nil {
		opts.Fs = def.Fs
	}
	if opts.BaseName == "" {
		opts.BaseName = def.BaseName
	}
	if opts.EncryptionKey == nil {
		opts.EncryptionKey = def.EncryptionKey
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = def.ChunkSize
	}
	if opts.MaxInheritanceDepth <= 0 {
		opts.MaxInheritanceDepth = def.MaxInheritanceDepth
	}
	return &Store{
		fs:       opts.Fs,
		log:      opts.Logger,
		rnd:      opts.Rand,
		chunk:    opts.ChunkSize,
		maxDepth: opts.MaxInheritanceDepth,
		index:    index.NewStringIndex[*section](0),
		key:      bytes.Clone(opts.EncryptionKey),
		baseName: trimExtension(opts.BaseName),

		keepIncludes: opts.KeepIncludes,
	}
}

// Init loads the main file and reads the history flag from the Config
// section. A missing main file is not an error. Calling Init on a ready
// store does nothing.
func (s *Store) Init() error {
	if s.ready {
		return nil
	}
	main := s.GetMainFileName()
	if err := s.Load(main); err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			return err
		}
		s.log.Info("main config file not found", "file", main)
	}
	s.historyOn = s.configFlag(HistoryKey)
	s.ready = true
	return nil
}

// Exit deletes every section, protected or not, and resets the store.
func (s *Store) Exit() {
	for _, sec := range s.sections {
		sec.entries = nil
		sec.deleted = true
	}
	s.sections = nil
	s.index.Reset()
	s.current = nil
	s.stack = nil
	s.history = nil
	s.includes = nil
	s.historyOn = false
	s.defaultParent = ""
	s.key = nil
	s.ready = false
}

// Ready reports whether Init completed.
func (s *Store) Ready() bool { return s.ready }

// configFlag reads a boolean from the Config section without creating it.
func (s *Store) configFlag(key string) bool {
	sec := s.find(ConfigSection)
	if sec == nil {
		return false
	}
	v, _ := s.lookup(sec, key, sec, 0)
	if v == nil {
		return false
	}
	b, _ := v.Bool(s.env(), 0)
	return b
}

func (s *Store) env() value.Env {
	return value.Env{Rand: s.rnd, Log: s.log}
}

// SetEncryptionKey replaces the key. A nil or empty key removes it, after
// which encrypted files can neither be loaded nor saved.
func (s *Store) SetEncryptionKey(key []byte) {
	if len(key) == 0 {
		s.key = nil
		return
	}
	s.key = bytes.Clone(key)
}

// GetEncryptionKey returns a copy of the key, nil when there is none.
func (s *Store) GetEncryptionKey() []byte {
	return bytes.Clone(s.key)
}

var errBaseNameFixed = &types.Error{Kind: types.ErrKindState, Msg: "config: base name cannot change after Init"}

// SetBaseName sets the main file name, without extension. An empty name
// restores DefaultBaseName. It must be called before Init.
func (s *Store) SetBaseName(name string) error {
	if s.ready {
		return errBaseNameFixed
	}
	if name == "" {
		name = DefaultBaseName
	}
	s.baseName = trimExtension(name)
	return nil
}

// GetMainFileName returns the name of the file Init loads.
func (s *Store) GetMainFileName() string {
	return s.baseName + FileExtension
}

func trimExtension(name string) string {
	if strings.HasSuffix(strings.ToLower(name), FileExtension) && len(name) > len(FileExtension) {
		return name[:len(name)-len(FileExtension)]
	}
	return name
}

// ioError classifies a filesystem error.
func ioError(op, name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return types.Wrap(types.ErrNotFound, "config: "+op+" "+name)
	}
	return &types.Error{Kind: types.ErrKindIO, Msg: "config: " + op + " " + name, Err: err}
}
