package cfgtext

import (
	"bufio"
	"io"
	"strings"
)

// Emitter writes config text. Errors are sticky: after the first failed
// write every call is a no-op and Flush returns that error.
type Emitter struct {
	w   *bufio.Writer
	err error
}

// NewEmitter returns an emitter buffering into w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

func (e *Emitter) write(parts ...string) {
	for _, p := range parts {
		if e.err != nil {
			return
		}
		_, e.err = e.w.WriteString(p)
	}
}

// Section writes a header: [Name], [Name@Parent] or [Name@@].
func (e *Emitter) Section(name, parent string, noParent bool) {
	switch {
	case noParent:
		e.write(string(SectionStart), name, NoParent, string(SectionEnd), EOL)
	case parent != "":
		e.write(string(SectionStart), name, string(InheritanceMarker), parent, string(SectionEnd), EOL)
	default:
		e.write(string(SectionStart), name, string(SectionEnd), EOL)
	}
}

// Entry writes "key = value". Block values are quoted with inner quotes doubled.
func (e *Emitter) Entry(key, literal string, block bool) {
	if block {
		e.write(key, AssignFormat, QuoteBlock(literal), EOL)
		return
	}
	e.write(key, AssignFormat, EscapePlain(literal), EOL)
}

// Include writes an include line: @path@
func (e *Emitter) Include(path string) {
	e.write(string(InheritanceMarker), path, string(InheritanceMarker), EOL)
}

// Blank writes an empty line.
func (e *Emitter) Blank() {
	e.write(EOL)
}

// Flush writes any buffered data and returns the first error.
func (e *Emitter) Flush() error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Flush()
	return e.err
}

// QuoteBlock quotes s as a block value.
func QuoteBlock(s string) string {
	q := string(BlockDelimiter)
	return q + strings.ReplaceAll(s, q, q+q) + q
}

// EscapePlain guards an unquoted value against being read back differently:
// a leading quote is doubled so it does not open a block, and a trailing list
// separator is doubled so it does not continue onto the next line.
func EscapePlain(s string) string {
	if s == "" {
		return s
	}
	if s[0] == BlockDelimiter {
		s = string(BlockDelimiter) + s
	}
	if s[len(s)-1] == ListSeparator {
		s += string(ListSeparator)
	}
	return s
}
