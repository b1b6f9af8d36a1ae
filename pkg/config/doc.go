// Package config is a hierarchical configuration store.
//
// A Store holds named sections of key/value entries. Values are read and
// written through the current section, selected with SelectSection or pushed
// and popped with PushSection, PopSection and Enter:
//
//	store := config.New(config.Options{})
//	if err := store.Init(); err != nil {
//		return err
//	}
//	scope, err := store.Enter("Player")
//	if err != nil {
//		return err
//	}
//	defer scope.Close()
//	speed := store.GetFloat("Speed")
//
// # Values
//
// A value is text. It may be a list ("a # b # c"), hold a random range
// ("1 ~ 10", "0 ~ 0.5 ~ 2" with a step), or reference another value:
//
//	Key = @Section       ; same key in Section
//	Key = @Section.Other ; Other in Section
//	Key = @.Other        ; Other in the section the lookup started from
//	Key = @              ; name of the section the lookup started from
//
// A quoted value ("...") is stored verbatim and is never split, randomized or
// followed.
//
// # Inheritance
//
// A key missing from a section is looked up in its parent, declared with
// [Section@Parent], then in the default parent set with SetDefaultParent.
// [Section@@] disables both. Reference and parent chains are bounded by
// Options.MaxInheritanceDepth; deeper chains are reported as cycles and do
// not resolve.
//
// # Files
//
// Load reads INI-like text. A line "@other.ini@" loads another file in place
// and "![Section]" empties a section before selecting it. Files starting with
// the "OECF" tag are XOR-enciphered with the store key; Save writes them with
// useEncryption set. All file access goes through an afero.Fs.
package config
