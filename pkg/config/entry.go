package config

import (
	"slices"

	"github.com/orx/orx-sub008/internal/value"
	"github.com/orx/orx-sub008/pkg/types"
)

type entry struct {
	key   string
	value *value.Value
}

// entry returns the position and entry for key, -1 and nil if absent.
func (sec *section) entry(key string) (int, *entry) {
	for i, e := range sec.entries {
		if e.key == key {
			return i, e
		}
	}
	return -1, nil
}

// addEntry appends a new entry. Non-block literals are normalized first.
func (s *Store) addEntry(sec *section, key, literal string, block bool) error {
	if key == "" {
		return types.Wrap(types.ErrEmptyName, "config: add entry to "+sec.name)
	}
	if !block {
		literal = value.Normalize(literal)
	}
	v := value.New(literal, block)
	if v.Overflowed() {
		s.log.Warn("list truncated", "section", sec.name, "key", key, "max", value.MaxListItems)
	}
	sec.entries = append(sec.entries, &entry{key: key, value: v})
	return nil
}

// deleteEntry removes the i-th entry of sec.
func (s *Store) deleteEntry(sec *section, i int) {
	sec.entries[i].value.Restore()
	sec.entries = slices.Delete(sec.entries, i, i+1)
}

// setEntry replaces any local entry for key with a new one at the end.
func (s *Store) setEntry(sec *section, key, literal string, block bool) error {
	if key == "" {
		return types.Wrap(types.ErrEmptyName, "config: set entry in "+sec.name)
	}
	if i, old := sec.entry(key); old != nil {
		if s.loading > 0 {
			s.log.Debug("redefined key", "section", sec.name, "key", key, "old", old.value.Literal(), "new", literal)
		}
		s.deleteEntry(sec, i)
	}
	return s.addEntry(sec, key, literal, block)
}

// appendEntry adds items to the local list for key, creating it if absent.
func (s *Store) appendEntry(sec *section, key, literal string) error {
	if key == "" {
		return types.Wrap(types.ErrEmptyName, "config: append entry in "+sec.name)
	}
	literal = value.Normalize(literal)
	i, old := sec.entry(key)
	if old == nil {
		return s.addEntry(sec, key, literal, false)
	}
	joined := literal
	if prev := old.value.Literal(); prev != "" {
		joined = value.JoinList([]string{prev, literal})
	}
	s.deleteEntry(sec, i)
	return s.addEntry(sec, key, joined, false)
}

// GetKeyCounter returns the number of local keys in the current section.
func (s *Store) GetKeyCounter() int {
	if s.current == nil {
		return 0
	}
	return len(s.current.entries)
}

// GetKey returns the i-th local key of the current section.
func (s *Store) GetKey(i int) string {
	if s.current == nil || i < 0 || i >= len(s.current.entries) {
		return ""
	}
	return s.current.entries[i].key
}

// ClearValue deletes the local entry for key in the current section.
// Inherited values stay visible.
func (s *Store) ClearValue(key string) error {
	if s.current == nil {
		return types.ErrNoSection
	}
	i, e := s.current.entry(key)
	if e == nil {
		return types.Wrap(types.ErrNotFound, "config: clear value "+key)
	}
	s.deleteEntry(s.current, i)
	return nil
}
