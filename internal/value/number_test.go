package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orx/orx-sub008/pkg/types"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		bits int
		want int64
		rest string
		ok   bool
	}{
		{"42", 32, 42, "", true},
		{"  -7 units", 32, -7, " units", true},
		{"+3~9", 32, 3, "~9", true},
		{"0x10", 32, 16, "", true},
		{"0XfF", 32, 255, "", true},
		{"0b101", 32, 5, "", true},
		{"010", 32, 8, "", true},
		{"09", 32, 0, "9", true},
		{"0", 32, 0, "", true},
		{"0x", 32, 0, "x", true},
		{"2147483647", 32, 2147483647, "", true},
		{"-2147483648", 32, -2147483648, "", true},
		{"2147483648", 32, 0, "2147483648", false},
		{"-9223372036854775808", 64, -9223372036854775808, "", true},
		{"abc", 32, 0, "abc", false},
		{"", 32, 0, "", false},
	}
	for _, tt := range tests {
		got, rest, ok := ParseInt(tt.in, tt.bits)
		assert.Equal(t, tt.ok, ok, "ParseInt(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseInt(%q)", tt.in)
		if ok {
			assert.Equal(t, tt.rest, rest, "ParseInt(%q) rest", tt.in)
		}
	}
}

func TestParseUint(t *testing.T) {
	got, rest, ok := ParseUint("4294967295#", 32)
	assert.True(t, ok)
	assert.Equal(t, uint64(4294967295), got)
	assert.Equal(t, "#", rest)

	_, _, ok = ParseUint("4294967296", 32)
	assert.False(t, ok)

	_, _, ok = ParseUint("-1", 32)
	assert.False(t, ok)

	got, _, ok = ParseUint("18446744073709551615", 64)
	assert.True(t, ok)
	assert.Equal(t, uint64(18446744073709551615), got)
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		rest string
		ok   bool
	}{
		{"1.5", 1.5, "", true},
		{" -0.25~1", -0.25, "~1", true},
		{".5", 0.5, "", true},
		{"5.", 5, "", true},
		{"1e3x", 1000, "x", true},
		{"2e", 2, "e", true},
		{"1E-2", 0.01, "", true},
		{".", 0, ".", false},
		{"-", 0, "-", false},
		{"nope", 0, "nope", false},
	}
	for _, tt := range tests {
		got, rest, ok := ParseFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseFloat(%q)", tt.in)
		if ok {
			assert.InDelta(t, tt.want, got, 1e-12, "ParseFloat(%q)", tt.in)
			assert.Equal(t, tt.rest, rest, "ParseFloat(%q) rest", tt.in)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"true", true, true},
		{"False", false, true},
		{"1", true, true},
		{"0", false, true},
		{"-3", true, true},
		{"yes", false, false},
	}
	for _, tt := range tests {
		got, _, ok := ParseBool(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseBool(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseBool(%q)", tt.in)
	}
}

func TestParseVector(t *testing.T) {
	tests := []struct {
		in   string
		want types.Vector
		rest string
		ok   bool
	}{
		{"(1, 2, 3)", types.Vector{X: 1, Y: 2, Z: 3}, "", true},
		{"{1,2,3}", types.Vector{X: 1, Y: 2, Z: 3}, "", true},
		{"  ( -1.5 ,0.5 , 2 ) ~ (0,0,0)", types.Vector{X: -1.5, Y: 0.5, Z: 2}, " ~ (0,0,0)", true},
		{"(4, 5)", types.Vector{X: 4, Y: 5}, "", true},
		{"(4)", types.Vector{X: 4}, "", true},
		{"(1, 2, 3", types.Vector{}, "", false},
		{"1, 2, 3", types.Vector{}, "", false},
		{"(a, b, c)", types.Vector{}, "", false},
	}
	for _, tt := range tests {
		got, rest, ok := ParseVector(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseVector(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseVector(%q)", tt.in)
		if ok {
			assert.Equal(t, tt.rest, rest, "ParseVector(%q) rest", tt.in)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	v := types.Vector{X: 0.1, Y: -2, Z: 1e-7}
	got, _, ok := ParseVector(FormatVector(v))
	assert.True(t, ok)
	assert.Equal(t, v, got)

	f, _, ok := ParseFloat(FormatFloat(3.14159))
	assert.True(t, ok)
	assert.Equal(t, 3.14159, f)
}
