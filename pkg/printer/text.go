package printer

import (
	"fmt"
	"strings"

	"github.com/orx/orx-sub008/internal/cfgtext"
	"github.com/orx/orx-sub008/pkg/config"
)

// printText prints sections in human-readable text format.
func (p *Printer) printText(secs []config.SectionView) error {
	for i, sec := range secs {
		if i > 0 {
			fmt.Fprintln(p.writer)
		}
		if err := p.printSectionText(sec); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printSectionText(sec config.SectionView) error {
	header := p.styles.section("[" + sec.Name + "]")
	switch {
	case sec.NoParent:
		header += " " + p.styles.parent("(no parent)")
	case sec.Parent != "":
		header += " " + p.styles.parent("(parent: "+sec.Parent+")")
	}
	if sec.Protected {
		header += " " + p.styles.flags("protected")
	}
	if _, err := fmt.Fprintln(p.writer, header); err != nil {
		return err
	}

	if !p.opts.ShowValues {
		_, err := fmt.Fprintf(p.writer, "%s%d keys\n", strings.Repeat(" ", p.opts.IndentSize), len(sec.Entries))
		return err
	}
	for _, e := range sec.Entries {
		if err := p.printEntryText(e, 1); err != nil {
			return err
		}
	}
	return nil
}

// printEntryText prints "Key = literal [flags]".
func (p *Printer) printEntryText(e config.EntryView, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	literal := e.Literal
	if e.Block {
		literal = cfgtext.QuoteBlock(literal)
	}
	truncated := ""
	if limit := p.opts.MaxValueLen; limit > 0 && len(literal) > limit {
		truncated = fmt.Sprintf(" (truncated, %d total bytes)", len(literal))
		literal = literal[:limit]
	}

	line := indent + p.styles.key(e.Key) + " = " + literal + truncated
	if flags := flagNames(e); p.opts.ShowFlags && len(flags) > 0 {
		line += " " + p.styles.flags("["+strings.Join(flags, ",")+"]")
	}
	_, err := fmt.Fprintln(p.writer, line)
	return err
}
