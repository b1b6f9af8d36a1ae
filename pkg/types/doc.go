// Package types holds the small set of types shared by the config store,
// its printer and its command line tool.
//
// Errors are typed with stable categories (format/not-found/invalid/state/...)
// so callers can branch with errors.Is on the exported sentinels or with
// KindOf on the category:
//
//	if err := store.PopSection(); errors.Is(err, types.ErrStackEmpty) {
//		// unbalanced push/pop
//	}
//
// This package has no dependencies beyond the standard library.
package types
