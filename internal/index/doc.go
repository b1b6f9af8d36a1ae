// Package index maps section names to section handles.
//
// The store keeps its sections in an insertion-ordered slice for iteration
// and saving, and this index next to it for lookups by name. Handles are
// whatever the store chooses (it uses section pointers); the index only owns
// the name → handle association.
//
// # Index Interfaces
//
// ReadOnlyIndex exposes lookups. Index adds Add/Remove/Rename/Reset.
// StringIndex is the map-backed implementation.
//
// # Usage Example
//
//	idx := index.NewStringIndex[*section](0)
//	idx.Add("Player", sec)
//	if s, ok := idx.Get("Player"); ok {
//		...
//	}
//	idx.Rename("Player", "Hero")
package index
