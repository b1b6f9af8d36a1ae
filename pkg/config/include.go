package config

import (
	"github.com/orx/orx-sub008/internal/cfgtext"
)

// includeLine is an include kept by a KeepIncludes store. It sits in sec,
// nil before any header, right after the entry called after, or right after
// the header when after is empty.
type includeLine struct {
	path  string
	sec   *section
	after string
}

func (s *Store) keepInclude(path string) {
	inc := includeLine{path: path, sec: s.current}
	if sec := s.current; sec != nil && len(sec.entries) > 0 {
		inc.after = sec.entries[len(sec.entries)-1].key
	}
	s.includes = append(s.includes, inc)
	s.log.Debug("kept include", "include", path)
}

// includeWriter emits kept include lines while Export walks the store.
type includeWriter struct {
	em      *cfgtext.Emitter
	pending []includeLine
}

func newIncludeWriter(em *cfgtext.Emitter, includes []includeLine) *includeWriter {
	return &includeWriter{em: em, pending: append([]includeLine(nil), includes...)}
}

// emit writes and drops the pending lines matched by match. write false drops
// them silently.
func (w *includeWriter) emit(write bool, match func(includeLine) bool) {
	rest := w.pending[:0]
	for _, inc := range w.pending {
		switch {
		case !match(inc):
			rest = append(rest, inc)
		case write:
			w.em.Include(inc.path)
		}
	}
	w.pending = rest
}

// at writes the lines placed after key in sec.
func (w *includeWriter) at(sec *section, key string) {
	w.emit(true, func(inc includeLine) bool { return inc.sec == sec && inc.after == key })
}

// endSection writes the lines of sec whose entry is gone, or drops every
// line of sec when the section was filtered out.
func (w *includeWriter) endSection(sec *section, written bool) {
	w.emit(written, func(inc includeLine) bool { return inc.sec == sec })
}

// rest writes the lines whose section was deleted.
func (w *includeWriter) rest() {
	w.emit(true, func(includeLine) bool { return true })
}
