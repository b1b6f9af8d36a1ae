package printer

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/orx/orx-sub008/pkg/config"
)

// TOML tables are written in key order.

func (p *Printer) tomlValue(e config.EntryView) any {
	if p.opts.ExpandLists && e.List {
		return e.Items
	}
	return e.Literal
}

func (p *Printer) printTOML(secs []config.SectionView) error {
	doc := make(map[string]map[string]any, len(secs))
	for _, sec := range secs {
		table := make(map[string]any, len(sec.Entries))
		if p.opts.ShowValues {
			for _, e := range sec.Entries {
				table[e.Key] = p.tomlValue(e)
			}
		}
		doc[sec.Name] = table
	}
	return toml.NewEncoder(p.writer).Encode(doc)
}

func (p *Printer) printValueTOML(e config.EntryView) error {
	return toml.NewEncoder(p.writer).Encode(map[string]any{e.Key: p.tomlValue(e)})
}
