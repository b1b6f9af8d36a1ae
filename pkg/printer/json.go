package printer

import (
	"encoding/json"
	"fmt"

	"github.com/orx/orx-sub008/pkg/config"
)

// jsonSection represents a section in JSON format.
type jsonSection struct {
	Name      string      `json:"name"`
	Parent    string      `json:"parent,omitempty"`
	NoParent  bool        `json:"no_parent,omitempty"`
	Protected bool        `json:"protected,omitempty"`
	Keys      int         `json:"keys"`
	Entries   []jsonEntry `json:"entries,omitempty"`
}

// jsonEntry represents one entry in JSON format.
type jsonEntry struct {
	Key   string   `json:"key"`
	Value string   `json:"value"`
	Items []string `json:"items,omitempty"`
	Flags []string `json:"flags,omitempty"`
}

func (p *Printer) toJSONEntry(e config.EntryView) jsonEntry {
	out := jsonEntry{Key: e.Key, Value: e.Literal}
	if p.opts.ExpandLists && e.List {
		out.Items = e.Items
	}
	if p.opts.ShowFlags {
		out.Flags = flagNames(e)
	}
	return out
}

func (p *Printer) toJSONSection(sec config.SectionView) jsonSection {
	out := jsonSection{
		Name:      sec.Name,
		Parent:    sec.Parent,
		NoParent:  sec.NoParent,
		Protected: sec.Protected,
		Keys:      len(sec.Entries),
	}
	if p.opts.ShowValues {
		for _, e := range sec.Entries {
			out.Entries = append(out.Entries, p.toJSONEntry(e))
		}
	}
	return out
}

// printJSON prints an array of sections, or a single object when single is set.
func (p *Printer) printJSON(secs []config.SectionView, single bool) error {
	var v any
	if single && len(secs) == 1 {
		v = p.toJSONSection(secs[0])
	} else {
		all := make([]jsonSection, 0, len(secs))
		for _, sec := range secs {
			all = append(all, p.toJSONSection(sec))
		}
		v = all
	}
	return p.writeJSON(v)
}

// printValueJSON prints a single entry in JSON format.
func (p *Printer) printValueJSON(e config.EntryView) error {
	return p.writeJSON(p.toJSONEntry(e))
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
