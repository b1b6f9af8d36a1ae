package index

// ReadOnlyIndex is the read-only interface for section lookups by name.
type ReadOnlyIndex[T any] interface {
	// Get returns the handle registered under name.
	Get(name string) (T, bool)

	// Len returns the number of registered names.
	Len() int

	// Stats returns index statistics (size, impl type).
	Stats() Stats
}

// Index is the full mutable interface. It embeds ReadOnlyIndex and adds
// mutation operations.
//
// Typical usage:
//   - Create: Add when a section is first selected
//   - Rename: Rename keeps the handle and moves it to the new name
//   - Delete: Remove when a section is cleared
type Index[T any] interface {
	ReadOnlyIndex[T]

	// Add registers handle under name, replacing any previous handle.
	Add(name string, handle T)

	// Remove drops name. Safe to call even if the entry doesn't exist.
	Remove(name string)

	// Rename moves the handle registered under oldName to newName.
	// It returns false if oldName is absent or newName is taken.
	Rename(oldName, newName string) bool

	// Reset drops every entry.
	Reset()
}

// Stats reports index metrics.
type Stats struct {
	Count       int    // Number of entries
	BytesApprox int    // Approximate memory usage (best effort)
	Impl        string // Implementation name
}
