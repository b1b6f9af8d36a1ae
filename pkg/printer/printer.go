package printer

import (
	"fmt"
	"io"

	"github.com/orx/orx-sub008/pkg/config"
	"github.com/orx/orx-sub008/pkg/types"
)

const (
	DefaultIndentSize  = 2
	DefaultMaxValueLen = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatINI outputs config text that Load reads back.
	FormatINI Format = "ini"

	// FormatYAML outputs YAML, sections as mappings.
	FormatYAML Format = "yaml"

	// FormatTOML outputs TOML, sections as tables.
	FormatTOML Format = "toml"
)

// ParseFormat returns the format called name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatINI, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, ini, yaml or toml)", name)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text and yaml).
	// Default: 2
	IndentSize int

	// ShowValues includes entries under each section.
	// Default: true
	ShowValues bool

	// ShowFlags tags entries with their shape (list, random, inherited, block).
	// Default: true
	ShowFlags bool

	// ExpandLists prints list values as their items instead of the literal
	// (json, yaml and toml only).
	// Default: false
	ExpandLists bool

	// MaxValueLen truncates longer literals in text output. 0 means no limit.
	// Default: 0
	MaxValueLen int

	// Color styles text output with lipgloss.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		ShowValues:  true,
		ShowFlags:   true,
		ExpandLists: false,
		MaxValueLen: DefaultMaxValueLen,
		Color:       false,
	}
}

// Source is the store content a Printer reads. *config.Store implements it.
type Source interface {
	Snapshot() []config.SectionView
	Export(w io.Writer, useEncryption bool, filter types.SaveFilter) error
}

// Printer handles formatted output of config sections.
type Printer struct {
	opts   Options
	writer io.Writer
	source Source
	styles styles
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(store, os.Stdout, printer.DefaultOptions())
//	p.PrintSection("Player")
func New(src Source, w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{
		source: src,
		writer: w,
		opts:   opts,
		styles: newStyles(opts.Color),
	}
}

// PrintAll prints every section in creation order.
func (p *Printer) PrintAll() error {
	return p.print(p.source.Snapshot(), nil)
}

// PrintSection prints one section.
func (p *Printer) PrintSection(name string) error {
	sec, err := p.find(name)
	if err != nil {
		return err
	}
	return p.print([]config.SectionView{sec}, func(s, _ string, _ bool) bool { return s == name })
}

// PrintValue prints one local entry of a section.
func (p *Printer) PrintValue(section, key string) error {
	sec, err := p.find(section)
	if err != nil {
		return err
	}
	for _, e := range sec.Entries {
		if e.Key != key {
			continue
		}
		switch p.opts.Format {
		case FormatJSON:
			return p.printValueJSON(e)
		case FormatINI:
			return p.printValueINI(e)
		case FormatYAML:
			return p.printValueYAML(e)
		case FormatTOML:
			return p.printValueTOML(e)
		default:
			return p.printEntryText(e, 0)
		}
	}
	return types.Wrap(types.ErrNotFound, fmt.Sprintf("key %q in section %q", key, section))
}

func (p *Printer) print(secs []config.SectionView, filter types.SaveFilter) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(secs, filter != nil)
	case FormatINI:
		return p.printINI(filter)
	case FormatYAML:
		return p.printYAML(secs)
	case FormatTOML:
		return p.printTOML(secs)
	default:
		return p.printText(secs)
	}
}

func (p *Printer) find(name string) (config.SectionView, error) {
	for _, sec := range p.source.Snapshot() {
		if sec.Name == name {
			return sec, nil
		}
	}
	return config.SectionView{}, types.Wrap(types.ErrNotFound, fmt.Sprintf("section %q", name))
}

// flagNames lists the shape flags of an entry.
func flagNames(e config.EntryView) []string {
	var out []string
	if e.List {
		out = append(out, "list")
	}
	if e.Random {
		out = append(out, "random")
	}
	if e.Inherited {
		out = append(out, "inherited")
	}
	if e.Block {
		out = append(out, "block")
	}
	return out
}
