package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/orx/orx-sub008/pkg/types"
)

// Number parsers consume the longest valid prefix and return the remainder,
// so a random separator can be searched for right after the first number.

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}

// detectBase reads an integer prefix at s[i:]: 0x/0X hex, 0b/0B binary, a
// leading 0 followed by a digit is octal, anything else decimal.
func detectBase(s string, i int) (base, next int) {
	if i+1 < len(s) && s[i] == '0' {
		switch s[i+1] {
		case 'x', 'X':
			if i+2 < len(s) && digitValue(s[i+2]) < 16 {
				return 16, i + 2
			}
		case 'b', 'B':
			if i+2 < len(s) && digitValue(s[i+2]) < 2 {
				return 2, i + 2
			}
		default:
			if isDigit(s[i+1]) {
				return 8, i + 1
			}
		}
	}
	return 10, i
}

// parseDigits returns the magnitude and remainder of an unsigned integer
// prefix, with its sign.
func parseDigits(s string) (mag uint64, neg bool, rest string, ok bool) {
	s = skipSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	base, start := detectBase(s, i)
	end := start
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == start {
		if base == 8 {
			// "09" reads as 0 followed by "9"
			return 0, neg, s[start:], true
		}
		return 0, false, s, false
	}
	mag, err := strconv.ParseUint(s[start:end], base, 64)
	if err != nil {
		return 0, false, s, false
	}
	return mag, neg, s[end:], true
}

// ParseInt parses a signed integer of the given bit size.
func ParseInt(s string, bits int) (int64, string, bool) {
	mag, neg, rest, ok := parseDigits(s)
	if !ok {
		return 0, s, false
	}
	limit := uint64(1) << (bits - 1)
	if neg {
		if mag > limit {
			return 0, s, false
		}
		return int64(-mag), rest, true
	}
	if mag > limit-1 {
		return 0, s, false
	}
	return int64(mag), rest, true
}

// ParseUint parses an unsigned integer of the given bit size. Negative
// numbers are rejected.
func ParseUint(s string, bits int) (uint64, string, bool) {
	mag, neg, rest, ok := parseDigits(s)
	if !ok || (neg && mag != 0) {
		return 0, s, false
	}
	if bits < 64 && mag > uint64(1)<<bits-1 {
		return 0, s, false
	}
	return mag, rest, true
}

// ParseFloat parses a decimal floating point prefix: sign, digits, optional
// fraction and optional exponent.
func ParseFloat(s string) (float64, string, bool) {
	s = skipSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, s, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, s, false
	}
	return f, s[i:], true
}

// ParseBool accepts an integer (non-zero is true) or a case-insensitive
// "true"/"false" prefix.
func ParseBool(s string) (bool, string, bool) {
	if n, rest, ok := ParseInt(s, 64); ok {
		return n != 0, rest, true
	}
	t := skipSpace(s)
	if len(t) >= 4 && strings.EqualFold(t[:4], "true") {
		return true, t[4:], true
	}
	if len(t) >= 5 && strings.EqualFold(t[:5], "false") {
		return false, t[5:], true
	}
	return false, s, false
}

// ParseVector parses "(x, y, z)" or "{x, y, z}". The y and z components are
// optional and default to zero. The remainder starts after the closing bracket.
func ParseVector(s string) (types.Vector, string, bool) {
	var v types.Vector
	t := skipSpace(s)
	if t == "" || (t[0] != '(' && t[0] != '{') {
		return v, s, false
	}
	t = t[1:]

	comps := [3]*float64{&v.X, &v.Y, &v.Z}
	for n, c := range comps {
		f, rest, ok := ParseFloat(t)
		if !ok {
			return types.Vector{}, s, false
		}
		*c = f
		t = skipSpace(rest)
		if n < len(comps)-1 && t != "" && t[0] == ',' {
			t = t[1:]
			continue
		}
		break
	}
	if t == "" || (t[0] != ')' && t[0] != '}') {
		return types.Vector{}, s, false
	}
	return v, t[1:], true
}

// FormatFloat writes f the shortest way that reads back to the same value.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatVector writes v as "(x, y, z)".
func FormatVector(v types.Vector) string {
	return "(" + FormatFloat(v.X) + ", " + FormatFloat(v.Y) + ", " + FormatFloat(v.Z) + ")"
}

// FormatBool writes b as "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
