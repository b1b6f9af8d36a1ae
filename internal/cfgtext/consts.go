package cfgtext

const (
	// ============================================================================
	// Reserved Characters
	// ============================================================================

	// SectionStart opens a section header: [Name]
	SectionStart = '['

	// SectionEnd closes a section header
	SectionEnd = ']'

	// SectionClear prefixes a header whose section is emptied before selection: ![Name]
	SectionClear = '!'

	// Assign separates a key from its value
	Assign = '='

	// Append precedes Assign to append list items: key += value
	Append = '+'

	// Comment starts a comment, at line start or after an unquoted value
	Comment = ';'

	// ListSeparator splits a value into list items
	ListSeparator = '#'

	// RandomSeparator splits a list item into a random range
	RandomSeparator = '~'

	// InheritanceMarker prefixes value references, suffixes section parents
	// and delimits included file names
	InheritanceMarker = '@'

	// KeySeparator splits a value reference into section and key: @Section.Key
	KeySeparator = '.'

	// BlockDelimiter quotes a single-line block value
	BlockDelimiter = '"'

	// ============================================================================
	// Line Terminators
	// ============================================================================

	// LF is the line feed character
	LF = '\n'

	// CR is the carriage return character
	CR = '\r'

	// EOL is the line terminator used when writing files
	EOL = "\n"

	// ============================================================================
	// Emitted Fragments
	// ============================================================================

	// AssignFormat separates key and value when writing: "key = value"
	AssignFormat = " = "

	// NoParent is the header suffix forcing a section to have no parent: [Name@@]
	NoParent = "@@"

	// ============================================================================
	// Buffer Sizes
	// ============================================================================

	// DefaultChunkSize is the scanner buffer size, and the longest accepted line
	DefaultChunkSize = 16 * 1024 // 16KB

	// MinChunkSize is the smallest buffer a Scanner accepts
	MinChunkSize = 16
)

// isSpace reports whether c is a space or a tab, the only characters
// trimmed around keys, values and section names.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
