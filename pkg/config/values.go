package config

import (
	"strconv"

	"github.com/orx/orx-sub008/internal/value"
	"github.com/orx/orx-sub008/pkg/types"
)

var errEmptyList = &types.Error{Kind: types.ErrKindInvalid, Msg: "config: empty list"}

// get resolves key from the current section and decodes item index with fn.
// Missing keys and decode failures yield the zero value.
func get[T any](s *Store, key string, index int, fn func(*value.Value, value.Env, int) (T, bool)) T {
	var zero T
	v, _ := s.valueOf(key)
	if v == nil {
		return zero
	}
	out, ok := fn(v, s.env(), index)
	if !ok {
		return zero
	}
	return out
}

// set replaces key in the current section.
func (s *Store) set(key, literal string, block bool) error {
	if s.current == nil {
		return types.ErrNoSection
	}
	return s.setEntry(s.current, key, literal, block)
}

// HasValue reports whether key resolves in the current section, locally or
// through inheritance.
func (s *Store) HasValue(key string) bool {
	v, _ := s.valueOf(key)
	return v != nil
}

// Getters. A list value yields a random item.

func (s *Store) GetS32(key string) int32           { return get(s, key, -1, (*value.Value).S32) }
func (s *Store) GetU32(key string) uint32          { return get(s, key, -1, (*value.Value).U32) }
func (s *Store) GetS64(key string) int64           { return get(s, key, -1, (*value.Value).S64) }
func (s *Store) GetU64(key string) uint64          { return get(s, key, -1, (*value.Value).U64) }
func (s *Store) GetFloat(key string) float64       { return get(s, key, -1, (*value.Value).Float) }
func (s *Store) GetBool(key string) bool           { return get(s, key, -1, (*value.Value).Bool) }
func (s *Store) GetVector(key string) types.Vector { return get(s, key, -1, (*value.Value).Vector) }
func (s *Store) GetString(key string) string       { return get(s, key, -1, (*value.Value).String) }

// List getters. A negative index picks a random item.

func (s *Store) GetListS32(key string, index int) int32 {
	return get(s, key, index, (*value.Value).S32)
}

func (s *Store) GetListU32(key string, index int) uint32 {
	return get(s, key, index, (*value.Value).U32)
}

func (s *Store) GetListS64(key string, index int) int64 {
	return get(s, key, index, (*value.Value).S64)
}

func (s *Store) GetListU64(key string, index int) uint64 {
	return get(s, key, index, (*value.Value).U64)
}

func (s *Store) GetListFloat(key string, index int) float64 {
	return get(s, key, index, (*value.Value).Float)
}

func (s *Store) GetListBool(key string, index int) bool {
	return get(s, key, index, (*value.Value).Bool)
}

func (s *Store) GetListVector(key string, index int) types.Vector {
	return get(s, key, index, (*value.Value).Vector)
}

func (s *Store) GetListString(key string, index int) string {
	return get(s, key, index, (*value.Value).String)
}

// Setters. Each replaces the local entry for key in the current section.

func (s *Store) SetS32(key string, v int32) error {
	return s.set(key, strconv.FormatInt(int64(v), 10), false)
}

func (s *Store) SetU32(key string, v uint32) error {
	return s.set(key, strconv.FormatUint(uint64(v), 10), false)
}

func (s *Store) SetS64(key string, v int64) error {
	return s.set(key, strconv.FormatInt(v, 10), false)
}

func (s *Store) SetU64(key string, v uint64) error {
	return s.set(key, strconv.FormatUint(v, 10), false)
}

func (s *Store) SetFloat(key string, v float64) error {
	return s.set(key, value.FormatFloat(v), false)
}

func (s *Store) SetBool(key string, v bool) error {
	return s.set(key, value.FormatBool(v), false)
}

func (s *Store) SetVector(key string, v types.Vector) error {
	return s.set(key, value.FormatVector(v), false)
}

// SetString stores v, which may hold list, random and inheritance syntax.
func (s *Store) SetString(key, v string) error {
	return s.set(key, v, false)
}

// SetStringBlock stores v verbatim, as if it had been quoted in a file.
func (s *Store) SetStringBlock(key, v string) error {
	return s.set(key, v, true)
}

// SetStringList stores items as one list value.
func (s *Store) SetStringList(key string, items []string) error {
	if len(items) == 0 {
		return errEmptyList
	}
	return s.set(key, value.JoinList(items), false)
}

// AppendListString adds items at the end of the local list for key.
func (s *Store) AppendListString(key string, items []string) error {
	if s.current == nil {
		return types.ErrNoSection
	}
	if len(items) == 0 {
		return errEmptyList
	}
	return s.appendEntry(s.current, key, value.JoinList(items))
}

// IsList reports whether the resolved value for key has several items.
func (s *Store) IsList(key string) bool {
	v, _ := s.valueOf(key)
	return v != nil && v.IsList()
}

// GetListCounter returns the item count of the resolved value, 0 if missing.
func (s *Store) GetListCounter(key string) int {
	v, _ := s.valueOf(key)
	if v == nil {
		return 0
	}
	return v.Count()
}

// IsRandomValue reports whether the resolved value holds a random range.
func (s *Store) IsRandomValue(key string) bool {
	v, _ := s.valueOf(key)
	return v != nil && v.IsRandom()
}

// IsInheritedValue reports whether the local entry for key is a reference.
// Values found through a parent section are not considered.
func (s *Store) IsInheritedValue(key string) bool {
	if s.current == nil {
		return false
	}
	_, e := s.current.entry(key)
	return e != nil && e.value.IsInherited()
}

// GetOrigin returns the name of the section holding the resolved value of
// key, empty if it does not resolve.
func (s *Store) GetOrigin(key string) string {
	_, holder := s.valueOf(key)
	if holder == nil {
		return ""
	}
	return holder.name
}
