package cfgtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orx/orx-sub008/pkg/ast"
)

func TestParseLine(t *testing.T) {
	pos := ast.Pos{LineNo: 1}
	tests := []struct {
		name string
		line string
		want ast.Node
	}{
		{name: "blank", line: "  \t ", want: nil},
		{name: "include", line: "@common.ini@", want: &ast.Include{Pos: pos, Path: "common.ini"}},
		{name: "include with trailing text", line: "  @ sub/a.ini @ ; note", want: &ast.Include{Pos: pos, Path: "sub/a.ini"}},
		{name: "include unterminated", line: "@common.ini", want: &ast.Invalid{Pos: pos, Text: "@common.ini", Reason: "include terminator not found"}},
		{name: "section", line: "[Player]", want: &ast.SectionHeader{Pos: pos, Name: "Player"}},
		{name: "section with parent", line: "[ Player @ Object ] ; c", want: &ast.SectionHeader{Pos: pos, Name: "Player", Parent: "Object", HasParent: true}},
		{name: "section no parent", line: "[Player@@]", want: &ast.SectionHeader{Pos: pos, Name: "Player", HasParent: true, NoParent: true}},
		{name: "section clears parent", line: "[Player@]", want: &ast.SectionHeader{Pos: pos, Name: "Player", HasParent: true}},
		{name: "section clear", line: "![Player]", want: &ast.SectionHeader{Pos: pos, Name: "Player", Clear: true}},
		{name: "section unterminated", line: "[Player", want: &ast.Invalid{Pos: pos, Text: "[Player", Reason: "section end not found"}},
		{name: "comment", line: "; hello", want: &ast.Comment{Pos: pos, Text: " hello"}},
		{name: "assignment", line: "Speed = 10 ; px/s", want: &ast.Assignment{Pos: pos, Key: "Speed", Value: "10"}},
		{name: "assignment list", line: "\tList=a # b#c", want: &ast.Assignment{Pos: pos, Key: "List", Value: "a # b#c"}},
		{name: "assignment empty", line: "Key =", want: &ast.Assignment{Pos: pos, Key: "Key"}},
		{name: "append", line: "List += d # e", want: &ast.Assignment{Pos: pos, Key: "List", Value: "d # e", Append: true}},
		{name: "block", line: `Text = "a#b~c ; not a comment" ; comment`, want: &ast.Assignment{Pos: pos, Key: "Text", Value: "a#b~c ; not a comment", Block: true}},
		{name: "block doubled quote", line: `Text = "say ""hi"""`, want: &ast.Assignment{Pos: pos, Key: "Text", Value: `say "hi"`, Block: true}},
		{name: "block unterminated", line: `Text = "open`, want: &ast.Assignment{Pos: pos, Key: "Text", Value: "open", Block: true, Unterminated: true}},
		{name: "empty quotes", line: `Text = "" ; nothing`, want: &ast.Assignment{Pos: pos, Key: "Text"}},
		{name: "block opening with quote", line: `Text = """a"" b"`, want: &ast.Assignment{Pos: pos, Key: "Text", Value: `"a" b`, Block: true}},
		{name: "escaped leading quote", line: `Text = ""x ; c`, want: &ast.Assignment{Pos: pos, Key: "Text", Value: `"x`}},
		{name: "list continues", line: "List = a # b # ; more", want: &ast.Assignment{Pos: pos, Key: "List", Value: "a # b #", Continues: true}},
		{name: "doubled trailing separator", line: "List = a # b ##", want: &ast.Assignment{Pos: pos, Key: "List", Value: "a # b #"}},
		{name: "no assignment", line: "Key", want: &ast.Invalid{Pos: pos, Text: "Key", Reason: "no assignment"}},
		{name: "empty key", line: " = 3", want: &ast.Invalid{Pos: pos, Text: "= 3", Reason: "empty key"}},
		{name: "bang without bracket", line: "!x = 1", want: &ast.Assignment{Pos: pos, Key: "!x", Value: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine([]byte(tt.line), 1)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestSplitSectionName(t *testing.T) {
	h := SplitSectionName("Child @ Parent")
	assert.Equal(t, "Child", h.Name)
	assert.Equal(t, "Parent", h.Parent)
	assert.True(t, h.HasParent)

	h = SplitSectionName("Plain")
	assert.Equal(t, "Plain", h.Name)
	assert.False(t, h.HasParent)
}

func TestQuoteBlock(t *testing.T) {
	assert.Equal(t, `"a ""b"" c"`, QuoteBlock(`a "b" c`))

	n := ParseLine([]byte("K = "+QuoteBlock(`x"y;z`)), 3)
	a, ok := n.(*ast.Assignment)
	require.True(t, ok)
	assert.True(t, a.Block)
	assert.Equal(t, `x"y;z`, a.Value)
	assert.Equal(t, 3, a.Line())
}

func TestEscapePlain(t *testing.T) {
	for _, v := range []string{`"x`, `"a" # b`, "a # b #", "plain", ""} {
		n := ParseLine([]byte("K = "+EscapePlain(v)), 1)
		a, ok := n.(*ast.Assignment)
		require.True(t, ok, v)
		assert.False(t, a.Block, v)
		assert.False(t, a.Continues, v)
		assert.Equal(t, v, a.Value)
	}
}
