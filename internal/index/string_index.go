package index

const (
	// estimatedBytesPerMapEntry is the rough estimate of memory overhead per map entry.
	// This includes Go's map overhead, the string header and a pointer-sized handle.
	estimatedBytesPerMapEntry = 48

	// defaultCapacity is the capacity hint used when none is given.
	defaultCapacity = 64
)

// StringIndex is a map-based index keyed by the exact, case-sensitive name.
type StringIndex[T any] struct {
	entries map[string]T
}

var _ Index[int] = (*StringIndex[int])(nil)

// NewStringIndex creates a StringIndex with an optional capacity hint.
func NewStringIndex[T any](capacity int) *StringIndex[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &StringIndex[T]{entries: make(map[string]T, capacity)}
}

// Get implements ReadOnlyIndex.
func (s *StringIndex[T]) Get(name string) (T, bool) {
	h, ok := s.entries[name]
	return h, ok
}

// Len implements ReadOnlyIndex.
func (s *StringIndex[T]) Len() int { return len(s.entries) }

// Add implements Index.
func (s *StringIndex[T]) Add(name string, handle T) {
	s.entries[name] = handle
}

// Remove implements Index.
func (s *StringIndex[T]) Remove(name string) {
	delete(s.entries, name)
}

// Rename implements Index.
func (s *StringIndex[T]) Rename(oldName, newName string) bool {
	h, ok := s.entries[oldName]
	if !ok {
		return false
	}
	if oldName == newName {
		return true
	}
	if _, taken := s.entries[newName]; taken {
		return false
	}
	delete(s.entries, oldName)
	s.entries[newName] = h
	return true
}

// Reset implements Index.
func (s *StringIndex[T]) Reset() {
	clear(s.entries)
}

// Stats implements ReadOnlyIndex.
func (s *StringIndex[T]) Stats() Stats {
	bytes := 0
	for name := range s.entries {
		bytes += len(name) + estimatedBytesPerMapEntry
	}
	return Stats{
		Count:       len(s.entries),
		BytesApprox: bytes,
		Impl:        "StringIndex",
	}
}
