package printer

import (
	"github.com/orx/orx-sub008/internal/cfgtext"
	"github.com/orx/orx-sub008/pkg/config"
	"github.com/orx/orx-sub008/pkg/types"
)

// printINI writes config text through the source's own exporter.
func (p *Printer) printINI(filter types.SaveFilter) error {
	return p.source.Export(p.writer, false, filter)
}

// printValueINI prints a single "key = value" line.
func (p *Printer) printValueINI(e config.EntryView) error {
	em := cfgtext.NewEmitter(p.writer)
	em.Entry(e.Key, e.Literal, e.Block)
	return em.Flush()
}
