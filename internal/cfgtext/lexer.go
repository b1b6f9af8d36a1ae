package cfgtext

import (
	"bytes"
	"strings"

	"github.com/orx/orx-sub008/pkg/ast"
)

// ParseLine classifies one line, given without its terminator. Blank lines
// return nil. Lines are recognized in priority order after leading spaces:
// include, section header, comment, assignment.
func ParseLine(line []byte, lineNo int) ast.Node {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i == len(line) {
		return nil
	}
	rest := line[i:]
	pos := ast.Pos{LineNo: lineNo}

	switch rest[0] {
	case InheritanceMarker:
		return parseInclude(rest, pos)
	case SectionStart:
		return parseSection(rest, pos, false)
	case SectionClear:
		if len(rest) > 1 && rest[1] == SectionStart {
			return parseSection(rest[1:], pos, true)
		}
	case Comment:
		return &ast.Comment{Pos: pos, Text: string(rest[1:])}
	}
	return parseAssignment(rest, pos)
}

func parseInclude(line []byte, pos ast.Pos) ast.Node {
	end := bytes.IndexByte(line[1:], InheritanceMarker)
	if end < 0 {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "include terminator not found"}
	}
	path := strings.Trim(string(line[1:1+end]), " \t")
	if path == "" {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "empty include"}
	}
	return &ast.Include{Pos: pos, Path: path}
}

func parseSection(line []byte, pos ast.Pos, clear bool) ast.Node {
	end := bytes.IndexByte(line, SectionEnd)
	if end < 0 {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "section end not found"}
	}
	h := SplitSectionName(string(line[1:end]))
	if h.Name == "" {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "empty section name"}
	}
	h.Pos = pos
	h.Clear = clear
	return &h
}

// SplitSectionName splits "Name@Parent" into a header. Spaces around both
// parts are trimmed; "Name@@" forces no parent and "Name@" clears it.
func SplitSectionName(s string) ast.SectionHeader {
	var h ast.SectionHeader
	marker := strings.IndexByte(s, InheritanceMarker)
	if marker < 0 {
		h.Name = strings.Trim(s, " \t")
		return h
	}
	h.Name = strings.Trim(s[:marker], " \t")
	h.HasParent = true
	parent := s[marker+1:]
	if len(parent) > 0 && parent[0] == InheritanceMarker {
		h.NoParent = true
		return h
	}
	h.Parent = strings.Trim(parent, " \t")
	return h
}

func parseAssignment(line []byte, pos ast.Pos) ast.Node {
	eq := bytes.IndexByte(line, Assign)
	if eq < 0 {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "no assignment"}
	}
	if c := bytes.IndexByte(line[:eq], Comment); c >= 0 {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "no assignment before comment"}
	}

	a := &ast.Assignment{Pos: pos}
	key := bytes.TrimRight(line[:eq], " \t")
	if len(key) > 0 && key[len(key)-1] == Append {
		a.Append = true
		key = bytes.TrimRight(key[:len(key)-1], " \t")
	}
	if len(key) == 0 {
		return &ast.Invalid{Pos: pos, Text: string(line), Reason: "empty key"}
	}
	a.Key = string(key)

	raw := bytes.TrimLeft(line[eq+1:], " \t")
	if len(raw) > 0 && raw[0] == BlockDelimiter {
		if s, closed, ok := parseBlock(raw); ok {
			a.Value, a.Block, a.Unterminated = s, true, !closed
			return a
		}
		if isEmptyQuotes(raw) {
			return a
		}
		// ""x is the escaped plain value "x
		raw = raw[1:]
	}
	a.Value, a.Continues = plainValue(raw)
	return a
}

// plainValue strips the comment and trailing spaces from an unquoted value.
// A trailing list separator continues the value on the next line; a doubled
// one is kept as a single literal separator.
func plainValue(raw []byte) (string, bool) {
	if c := bytes.IndexByte(raw, Comment); c >= 0 {
		raw = raw[:c]
	}
	raw = bytes.TrimRight(raw, " \t")
	n := len(raw)
	switch {
	case n >= 2 && raw[n-1] == ListSeparator && raw[n-2] == ListSeparator:
		return string(raw[:n-1]), false
	case n >= 1 && raw[n-1] == ListSeparator:
		return string(raw), true
	}
	return string(raw), false
}

// parseBlock reads a quoted value. A doubled quote stands for one quote and
// text after the closing quote is ignored. A value opening with exactly two
// quotes is not a block, three open a block starting with a quote. A missing
// closing quote takes the rest of the line.
func parseBlock(raw []byte) (s string, closed, ok bool) {
	if len(raw) > 1 && raw[1] == BlockDelimiter && (len(raw) < 3 || raw[2] != BlockDelimiter) {
		return "", false, false
	}
	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if c == BlockDelimiter {
			if i+1 < len(raw) && raw[i+1] == BlockDelimiter {
				b.WriteByte(c)
				i++
				continue
			}
			return b.String(), true, true
		}
		b.WriteByte(c)
	}
	return b.String(), false, true
}

// isEmptyQuotes reports whether raw is `""` followed only by spaces or a comment.
func isEmptyQuotes(raw []byte) bool {
	if len(raw) < 2 || raw[0] != BlockDelimiter || raw[1] != BlockDelimiter {
		return false
	}
	rest := bytes.TrimLeft(raw[2:], " \t")
	return len(rest) == 0 || rest[0] == Comment
}
