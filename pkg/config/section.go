package config

import (
	"slices"
	"strings"

	"github.com/orx/orx-sub008/internal/cfgtext"
	"github.com/orx/orx-sub008/pkg/ast"
	"github.com/orx/orx-sub008/pkg/types"
)

// section is a named bag of entries. Its parent is kept by name and looked
// up when a key is missing, so it may name a section that does not exist yet.
type section struct {
	name       string
	parent     string
	noParent   bool
	protection int
	entries    []*entry
	deleted    bool
}

// find returns the section called name, nil if absent.
func (s *Store) find(name string) *section {
	sec, _ := s.index.Get(name)
	return sec
}

// ensure returns the section called name, creating it at the end of the
// section order if needed.
func (s *Store) ensure(name string) *section {
	if sec := s.find(name); sec != nil {
		return sec
	}
	sec := &section{name: name}
	s.sections = append(s.sections, sec)
	s.index.Add(name, sec)
	return sec
}

// SelectSection makes name the current section, creating it if needed.
// A "Name@Parent" suffix sets the parent, only while a file is being loaded.
func (s *Store) SelectSection(name string) error {
	h := cfgtext.SplitSectionName(name)
	if h.Name == "" {
		return types.Wrap(types.ErrEmptyName, "config: select section")
	}
	s.selectHeader(&h)
	return nil
}

func (s *Store) selectHeader(h *ast.SectionHeader) {
	sec := s.current
	if sec == nil || sec.name != h.Name {
		sec = s.ensure(h.Name)
	}
	if h.HasParent && s.loading > 0 {
		s.applyParent(sec, h)
	}
	s.current = sec
}

func (s *Store) applyParent(sec *section, h *ast.SectionHeader) {
	switch {
	case h.NoParent:
		sec.parent, sec.noParent = "", true
	case h.Parent == sec.name:
		s.log.Warn("section cannot inherit from itself, ignoring parent", "section", sec.name)
	default:
		sec.parent, sec.noParent = h.Parent, false
	}
}

// HasSection reports whether a section called name exists.
func (s *Store) HasSection(name string) bool {
	return s.find(name) != nil
}

// GetCurrentSection returns the current section's name, empty if none.
func (s *Store) GetCurrentSection() string {
	if s.current == nil {
		return ""
	}
	return s.current.name
}

// GetSectionCount returns the number of sections.
func (s *Store) GetSectionCount() int {
	return len(s.sections)
}

// GetSection returns the name of the i-th section in creation order.
func (s *Store) GetSection(i int) string {
	if i < 0 || i >= len(s.sections) {
		return ""
	}
	return s.sections[i].name
}

// SetParent sets the parent of section, creating section if needed.
// An empty parent removes it, ParentNone forces no parent at all.
func (s *Store) SetParent(name, parent string) error {
	if name == "" {
		return types.Wrap(types.ErrEmptyName, "config: set parent")
	}
	if strings.IndexByte(name, cfgtext.InheritanceMarker) >= 0 {
		return types.Wrap(types.ErrInvalidName, "config: set parent of "+name)
	}
	sec := s.ensure(name)
	switch parent {
	case "":
		sec.parent, sec.noParent = "", false
	case ParentNone:
		sec.parent, sec.noParent = "", true
	default:
		if parent == name {
			return types.Wrap(types.ErrInvalidName, "config: section "+name+" cannot inherit from itself")
		}
		sec.parent, sec.noParent = parent, false
	}
	return nil
}

// GetParent returns the declared parent of section. ok is false when the
// section does not exist or has no parent; a section forced to have no
// parent reports ParentNone.
func (s *Store) GetParent(name string) (parent string, ok bool) {
	sec := s.find(name)
	if sec == nil {
		return "", false
	}
	if sec.noParent {
		return ParentNone, true
	}
	return sec.parent, sec.parent != ""
}

// SetDefaultParent names the section consulted last by every section
// without an explicit parent. Empty disables it.
func (s *Store) SetDefaultParent(name string) {
	s.defaultParent = name
}

// GetDefaultParent returns the default parent, empty if none.
func (s *Store) GetDefaultParent() string {
	return s.defaultParent
}

// parentOf returns the section consulted when a key is missing from sec.
func (s *Store) parentOf(sec *section) *section {
	if sec.parent != "" {
		return s.find(sec.parent)
	}
	if sec.noParent || s.defaultParent == "" || s.defaultParent == sec.name {
		return nil
	}
	return s.find(s.defaultParent)
}

// ProtectSection increments (protect) or decrements the protection count of
// a section. Protected sections survive ClearSection and Clear.
func (s *Store) ProtectSection(name string, protect bool) error {
	sec := s.find(name)
	if sec == nil {
		return types.Wrap(types.ErrNotFound, "config: protect section "+name)
	}
	if protect {
		sec.protection++
		return nil
	}
	if sec.protection == 0 {
		s.log.Warn("unbalanced section protection", "section", name)
		return types.Wrap(types.ErrProtected, "config: unprotect section "+name)
	}
	sec.protection--
	return nil
}

// IsProtected reports whether a section has a positive protection count.
func (s *Store) IsProtected(name string) bool {
	sec := s.find(name)
	return sec != nil && sec.protection > 0
}

// ClearSection deletes every entry of a section, then the section itself
// unless it is protected.
func (s *Store) ClearSection(name string) error {
	sec := s.find(name)
	if sec == nil {
		return types.Wrap(types.ErrNotFound, "config: clear section "+name)
	}
	s.deleteSection(sec)
	return nil
}

// Clear runs ClearSection on every section and forgets kept include lines.
func (s *Store) Clear() error {
	for _, sec := range slices.Clone(s.sections) {
		s.deleteSection(sec)
	}
	s.includes = nil
	return nil
}

// deleteSection empties sec and removes it when unprotected. It reports
// whether sec was removed.
func (s *Store) deleteSection(sec *section) bool {
	for len(sec.entries) > 0 {
		s.deleteEntry(sec, len(sec.entries)-1)
	}
	if sec.protection > 0 {
		s.log.Debug("section is protected, keeping it", "section", sec.name, "protection", sec.protection)
		return false
	}

	before := len(s.stack)
	s.stack = slices.DeleteFunc(s.stack, func(p *section) bool { return p == sec })
	if n := before - len(s.stack); n > 0 {
		s.log.Warn("deleted section was still on the section stack", "section", sec.name, "entries", n)
	}
	if s.current == sec {
		s.current = nil
	}
	if i := slices.Index(s.sections, sec); i >= 0 {
		s.sections = slices.Delete(s.sections, i, i+1)
	}
	s.index.Remove(sec.name)
	sec.deleted = true
	return true
}

// RenameSection changes a section's name, keeping its entries and position.
// Sections declaring it as parent follow the rename.
func (s *Store) RenameSection(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return types.Wrap(types.ErrEmptyName, "config: rename section")
	}
	if strings.IndexByte(oldName, cfgtext.InheritanceMarker) >= 0 ||
		strings.IndexByte(newName, cfgtext.InheritanceMarker) >= 0 {
		return types.Wrap(types.ErrInvalidName, "config: rename section "+oldName)
	}
	sec := s.find(oldName)
	if sec == nil {
		return types.Wrap(types.ErrNotFound, "config: rename section "+oldName)
	}
	if !s.index.Rename(oldName, newName) {
		return types.Wrap(types.ErrSectionExists, "config: rename section "+oldName+" to "+newName)
	}
	sec.name = newName
	for _, other := range s.sections {
		if other.parent == oldName {
			other.parent = newName
		}
	}
	if s.defaultParent == oldName {
		s.defaultParent = newName
	}
	return nil
}
