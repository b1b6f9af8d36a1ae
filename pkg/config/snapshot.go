package config

// SectionView is a read-only copy of one section.
type SectionView struct {
	Name      string
	Parent    string
	NoParent  bool
	Protected bool
	Entries   []EntryView
}

// EntryView is a read-only copy of one local entry.
type EntryView struct {
	Key       string
	Literal   string
	Items     []string
	Block     bool
	List      bool
	Random    bool
	Inherited bool
}

// Snapshot copies every section and its local entries, in creation order.
func (s *Store) Snapshot() []SectionView {
	out := make([]SectionView, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, viewOf(sec))
	}
	return out
}

// SnapshotSection copies one section.
func (s *Store) SnapshotSection(name string) (SectionView, bool) {
	sec := s.find(name)
	if sec == nil {
		return SectionView{}, false
	}
	return viewOf(sec), true
}

func viewOf(sec *section) SectionView {
	v := SectionView{
		Name:      sec.name,
		Parent:    sec.parent,
		NoParent:  sec.noParent,
		Protected: sec.protection > 0,
		Entries:   make([]EntryView, 0, len(sec.entries)),
	}
	for _, e := range sec.entries {
		v.Entries = append(v.Entries, EntryView{
			Key:       e.key,
			Literal:   e.value.Literal(),
			Items:     e.value.Items(),
			Block:     e.value.IsBlock(),
			List:      e.value.IsList(),
			Random:    e.value.IsRandom(),
			Inherited: e.value.IsInherited() || e.value.IsSelf(),
		})
	}
	return v
}
