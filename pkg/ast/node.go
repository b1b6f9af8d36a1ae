package ast

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInclude
	KindSection
	KindAssignment
	KindComment
)

// String implements the Stringer interface for Kind
func (k Kind) String() string {
	switch k {
	case KindInclude:
		return "include"
	case KindSection:
		return "section"
	case KindAssignment:
		return "assignment"
	case KindComment:
		return "comment"
	default:
		return "invalid"
	}
}

// Node is one parsed line.
type Node interface {
	Kind() Kind
	// Line is the 1-based line number in the source stream.
	Line() int
}

// Pos is embedded by every node to carry its line number.
type Pos struct {
	LineNo int
}

// Line implements Node.
func (p Pos) Line() int { return p.LineNo }

// Include asks the loader to load another file in place: @path@
type Include struct {
	Pos
	Path string
}

// Kind implements Node.
func (*Include) Kind() Kind { return KindInclude }

// SectionHeader selects (and creates on demand) a section: [Name@Parent]
type SectionHeader struct {
	Pos
	Name string
	// Parent is the declared parent. Empty with HasParent set clears the
	// parent; NoParent forces "no parent at all" ([Name@@]).
	Parent    string
	HasParent bool
	NoParent  bool
	// Clear empties the section before selecting it: ![Name]
	Clear bool
}

// Kind implements Node.
func (*SectionHeader) Kind() Kind { return KindSection }

// Assignment sets a key of the current section.
type Assignment struct {
	Pos
	Key   string
	Value string
	// Block marks a quoted value, exempt from list and random processing.
	Block bool
	// Append adds the value's items to the existing list: key += value
	Append bool
	// Unterminated marks a block missing its closing quote.
	Unterminated bool
	// Continues marks a plain value ending with a list separator. The
	// Scanner appends the following lines to Value until one does not.
	Continues bool
}

// Kind implements Node.
func (*Assignment) Kind() Kind { return KindAssignment }

// Comment is a full comment line, without its leading ';'.
type Comment struct {
	Pos
	Text string
}

// Kind implements Node.
func (*Comment) Kind() Kind { return KindComment }

// Invalid is a line that could not be classified.
type Invalid struct {
	Pos
	Text   string
	Reason string
}

// Kind implements Node.
func (*Invalid) Kind() Kind { return KindInvalid }
