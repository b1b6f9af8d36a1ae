package config

import "github.com/orx/orx-sub008/internal/value"

// lookup resolves key starting at sec. References and parents are followed
// until a plain value is found; the section holding it is returned with it.
// origin is where the lookup started, it anchors "@.Key" references.
func (s *Store) lookup(sec *section, key string, origin *section, depth int) (*value.Value, *section) {
	if depth > s.maxDepth {
		s.log.Warn("inheritance cycle or chain too deep", "section", origin.name, "key", key, "depth", depth)
		return nil, nil
	}

	if _, e := sec.entry(key); e != nil {
		refSection, refKey, ok := e.value.Reference()
		if !ok {
			return e.value, sec
		}
		if refKey == "" {
			refKey = key
		}
		target := origin
		if refSection != "" {
			target = s.find(refSection)
		}
		if target == nil {
			s.log.Debug("inherited section not found", "section", sec.name, "key", key, "ref", refSection)
			return nil, nil
		}
		return s.lookup(target, refKey, origin, depth+1)
	}

	if parent := s.parentOf(sec); parent != nil {
		return s.lookup(parent, key, origin, depth+1)
	}
	return nil, nil
}

// valueOf resolves key from the current section. A self value is replaced by
// the current section's name.
func (s *Store) valueOf(key string) (*value.Value, *section) {
	if s.current == nil || key == "" {
		return nil, nil
	}
	v, holder := s.lookup(s.current, key, s.current, 0)
	if v != nil && v.IsSelf() {
		return value.New(s.current.name, true), holder
	}
	return v, holder
}
