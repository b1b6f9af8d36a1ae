package value

import "strings"

// Kind is the type a value was last decoded as.
type Kind uint8

const (
	KindString Kind = iota
	KindFloat
	KindS32
	KindU32
	KindS64
	KindU64
	KindBool
	KindVector
)

// String implements the Stringer interface for Kind
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindS32:
		return "s32"
	case KindU32:
		return "u32"
	case KindS64:
		return "s64"
	case KindU64:
		return "u64"
	case KindBool:
		return "bool"
	case KindVector:
		return "vector"
	default:
		return "string"
	}
}

// Flags describe the shape of a decoded value.
type Flags uint8

const (
	FlagList      Flags = 1 << iota // more than one '#'-separated item
	FlagRandom                      // at least one undoubled '~'
	FlagInherited                   // "@Section[.Key]" reference
	FlagSelf                        // bare "@", resolves to the owning section's name
	FlagBlock                       // quoted block, never split or randomized
)

const (
	// MaxListItems is the largest number of items a value is split into.
	// Separators past the limit stay inside the last item.
	MaxListItems = 255

	listSeparator     = '#'
	randomSeparator   = '~'
	inheritanceMarker = '@'

	noIndex = -1
)

type span struct {
	start, end int
}

// Value is one entry's content. The literal text is never modified: list
// items are addressed through a span table built by Decode.
type Value struct {
	literal  string
	items    []span
	flags    Flags
	overflow bool

	// cache of the last resolved item
	kind    Kind
	index   int
	primary scalar
	alt     scalar
	step    scalar
	ranged  bool
	stepped bool
}

// New returns a decoded value. Block values keep their text as one item and
// are exempt from list, random and inheritance processing.
func New(literal string, block bool) *Value {
	v := &Value{literal: literal, index: noIndex}
	if block {
		v.flags = FlagBlock
		v.items = []span{{0, len(literal)}}
		return v
	}
	v.Decode()
	return v
}

// Decode builds the working form: the item span table and the flags.
// Calling it again yields the same table.
func (v *Value) Decode() {
	v.resetCache()
	if v.flags&FlagBlock != 0 {
		return
	}
	v.flags &^= FlagList | FlagRandom | FlagInherited | FlagSelf
	v.items = v.items[:0]
	v.overflow = false

	s := v.literal
	if len(s) > 0 && s[0] == inheritanceMarker && (len(s) == 1 || s[1] != inheritanceMarker) {
		if len(s) == 1 {
			v.flags |= FlagSelf
		} else {
			v.flags |= FlagInherited
		}
		v.items = append(v.items, span{0, len(s)})
		return
	}

	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case listSeparator:
			if len(v.items)+1 < MaxListItems {
				v.items = append(v.items, span{start, i})
				start = i + 1
			} else {
				v.overflow = true
			}
		case randomSeparator:
			if i+1 < len(s) && s[i+1] == randomSeparator {
				i++
			} else {
				v.flags |= FlagRandom
			}
		}
	}
	v.items = append(v.items, span{start, len(s)})
	if len(v.items) > 1 {
		v.flags |= FlagList
	}
}

// Restore returns the value to its literal form: one item covering the whole
// text, no list flag and no cached decode.
func (v *Value) Restore() {
	v.resetCache()
	v.flags &^= FlagList
	v.items = append(v.items[:0], span{0, len(v.literal)})
}

func (v *Value) resetCache() {
	v.kind = KindString
	v.index = noIndex
	v.ranged = false
	v.stepped = false
}

// Literal returns the text as written, list separators included.
func (v *Value) Literal() string { return v.literal }

// Count returns the number of list items, 1 for a non-list value.
func (v *Value) Count() int { return len(v.items) }

// Item returns the i-th list item.
func (v *Value) Item(i int) (string, bool) {
	if i < 0 || i >= len(v.items) {
		return "", false
	}
	sp := v.items[i]
	return v.literal[sp.start:sp.end], true
}

// Items returns every list item.
func (v *Value) Items() []string {
	out := make([]string, len(v.items))
	for i, sp := range v.items {
		out[i] = v.literal[sp.start:sp.end]
	}
	return out
}

// Flags returns the decoded flags.
func (v *Value) Flags() Flags { return v.flags }

func (v *Value) IsList() bool      { return v.flags&FlagList != 0 }
func (v *Value) IsRandom() bool    { return v.flags&FlagRandom != 0 }
func (v *Value) IsInherited() bool { return v.flags&FlagInherited != 0 }
func (v *Value) IsSelf() bool      { return v.flags&FlagSelf != 0 }
func (v *Value) IsBlock() bool     { return v.flags&FlagBlock != 0 }

// Overflowed reports whether Decode stopped splitting at MaxListItems.
func (v *Value) Overflowed() bool { return v.overflow }

// Kind returns the type of the cached decode, KindString when nothing is cached.
func (v *Value) Kind() Kind { return v.kind }

// Reference splits an inherited value into its target section and key.
// key is empty for "@Section", which means the same key in Section.
// A trailing marker ("@Section@") is ignored.
func (v *Value) Reference() (section, key string, ok bool) {
	if v.flags&FlagInherited == 0 {
		return "", "", false
	}
	ref := strings.TrimSuffix(v.literal[1:], string(inheritanceMarker))
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i], ref[i+1:], true
	}
	return ref, "", true
}

// Normalize trims spaces and tabs around the text and around every list
// separator. Spaces inside an item are kept.
func Normalize(s string) string {
	s = strings.Trim(s, " \t")
	if strings.IndexByte(s, listSeparator) < 0 {
		return s
	}
	parts := strings.Split(s, string(listSeparator))
	for i, p := range parts {
		parts[i] = strings.Trim(p, " \t")
	}
	return strings.Join(parts, string(listSeparator))
}

// JoinList builds the literal of a list from its items.
func JoinList(items []string) string {
	return strings.Join(items, string(listSeparator))
}
