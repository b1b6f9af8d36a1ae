package value

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/orx/orx-sub008/pkg/types"
)

// Env carries what resolution draws on: a random source and a logger.
// Zero fields fall back to the global random source and a discarding logger.
type Env struct {
	Rand *rand.Rand
	Log  *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.New(slog.DiscardHandler)
}

func (e Env) intN(n int) int {
	if e.Rand != nil {
		return e.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// uint64Incl returns a uniform number in [0, n].
func (e Env) uint64Incl(n uint64) uint64 {
	if n == math.MaxUint64 {
		if e.Rand != nil {
			return e.Rand.Uint64()
		}
		return rand.Uint64()
	}
	if e.Rand != nil {
		return e.Rand.Uint64N(n + 1)
	}
	return rand.Uint64N(n + 1)
}

func (e Env) float64() float64 {
	if e.Rand != nil {
		return e.Rand.Float64()
	}
	return rand.Float64()
}

// scalar holds one decoded number of any kind.
type scalar struct {
	i int64
	u uint64
	f float64
	b bool
	v types.Vector
}

func parseScalar(kind Kind, s string) (scalar, string, bool) {
	var out scalar
	var rest string
	var ok bool
	switch kind {
	case KindS32:
		out.i, rest, ok = ParseInt(s, 32)
	case KindS64:
		out.i, rest, ok = ParseInt(s, 64)
	case KindU32:
		out.u, rest, ok = ParseUint(s, 32)
	case KindU64:
		out.u, rest, ok = ParseUint(s, 64)
	case KindFloat:
		out.f, rest, ok = ParseFloat(s)
	case KindBool:
		out.b, rest, ok = ParseBool(s)
	case KindVector:
		out.v, rest, ok = ParseVector(s)
	}
	return out, rest, ok
}

// nextRange returns the text after a random separator at the start of rest.
// A doubled separator does not open a range.
func nextRange(rest string) (string, bool) {
	sep := strings.IndexByte(rest, randomSeparator)
	if sep < 0 || (sep+1 < len(rest) && rest[sep+1] == randomSeparator) {
		return "", false
	}
	return rest[sep+1:], true
}

func validStep(kind Kind, step scalar) bool {
	switch kind {
	case KindS32, KindS64:
		return step.i > 0
	case KindU32, KindU64:
		return step.u > 0
	case KindFloat:
		return step.f >= 0
	case KindVector:
		return step.v.X >= 0 && step.v.Y >= 0 && step.v.Z >= 0
	}
	return false
}

// itemIndex maps a requested index to an item. Negative means random when
// the value is a list, first item otherwise.
func (v *Value) itemIndex(env Env, index int) (int, bool) {
	if index < 0 {
		if v.flags&FlagList != 0 {
			return env.intN(len(v.items)), true
		}
		return 0, true
	}
	if index >= len(v.items) {
		return 0, false
	}
	return index, true
}

// resolve decodes item index as kind, using the cache when the same item was
// last decoded as the same kind. Random items draw a new number every call.
func (v *Value) resolve(env Env, kind Kind, index int) (scalar, bool) {
	i, ok := v.itemIndex(env, index)
	if !ok {
		env.logger().Warn("list index out of range", "value", v.literal, "index", index, "count", len(v.items))
		return scalar{}, false
	}
	if v.kind == kind && v.index == i {
		return v.draw(env), true
	}

	item, _ := v.Item(i)
	first, rest, ok := parseScalar(kind, item)
	if !ok {
		v.resetCache()
		env.logger().Debug("value is not of requested type", "value", item, "type", kind)
		return scalar{}, false
	}
	v.resetCache()
	v.kind, v.index, v.primary = kind, i, first

	if kind == KindBool || v.flags&FlagRandom == 0 {
		return first, true
	}
	tail, ok := nextRange(rest)
	if !ok {
		return first, true
	}
	second, rest, ok := parseScalar(kind, tail)
	if !ok {
		env.logger().Warn("invalid random range, using first value", "value", item, "type", kind)
		v.resetCache()
		return first, true
	}
	v.alt, v.ranged = second, true

	if tail, ok := nextRange(rest); ok {
		if third, _, ok := parseScalar(kind, tail); ok {
			if validStep(kind, second) {
				v.step, v.alt, v.stepped = second, third, true
			} else {
				env.logger().Warn("invalid random step, ignoring it", "value", item, "type", kind)
				v.alt = third
			}
		}
	}
	return v.draw(env), true
}

// draw returns the cached primary, or a fresh number in [primary, alt].
func (v *Value) draw(env Env) scalar {
	if !v.ranged {
		return v.primary
	}
	lo, hi, step := v.primary, v.alt, v.step
	var out scalar
	switch v.kind {
	case KindS32, KindS64:
		a, b := lo.i, hi.i
		if a > b {
			a, b = b, a
		}
		n := uint64(b - a)
		if v.stepped {
			out.i = a + int64(env.uint64Incl(n/uint64(step.i))*uint64(step.i))
		} else {
			out.i = a + int64(env.uint64Incl(n))
		}
	case KindU32, KindU64:
		a, b := lo.u, hi.u
		if a > b {
			a, b = b, a
		}
		if v.stepped {
			out.u = a + env.uint64Incl((b-a)/step.u)*step.u
		} else {
			out.u = a + env.uint64Incl(b-a)
		}
	case KindFloat:
		out.f = drawFloat(env, lo.f, hi.f, step.f, v.stepped)
	case KindVector:
		out.v = types.Vector{
			X: drawFloat(env, lo.v.X, hi.v.X, step.v.X, v.stepped),
			Y: drawFloat(env, lo.v.Y, hi.v.Y, step.v.Y, v.stepped),
			Z: drawFloat(env, lo.v.Z, hi.v.Z, step.v.Z, v.stepped),
		}
	default:
		return v.primary
	}
	return out
}

func drawFloat(env Env, lo, hi, step float64, stepped bool) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if stepped && step > 0 {
		n := int(math.Floor((hi - lo) / step))
		return lo + float64(env.intN(n+1))*step
	}
	return lo + (hi-lo)*env.float64()
}

// S32 resolves item index as a signed 32-bit integer.
func (v *Value) S32(env Env, index int) (int32, bool) {
	s, ok := v.resolve(env, KindS32, index)
	return int32(s.i), ok
}

// U32 resolves item index as an unsigned 32-bit integer.
func (v *Value) U32(env Env, index int) (uint32, bool) {
	s, ok := v.resolve(env, KindU32, index)
	return uint32(s.u), ok
}

// S64 resolves item index as a signed 64-bit integer.
func (v *Value) S64(env Env, index int) (int64, bool) {
	s, ok := v.resolve(env, KindS64, index)
	return s.i, ok
}

// U64 resolves item index as an unsigned 64-bit integer.
func (v *Value) U64(env Env, index int) (uint64, bool) {
	s, ok := v.resolve(env, KindU64, index)
	return s.u, ok
}

// Float resolves item index as a float.
func (v *Value) Float(env Env, index int) (float64, bool) {
	s, ok := v.resolve(env, KindFloat, index)
	return s.f, ok
}

// Bool resolves item index as a boolean. Random ranges do not apply.
func (v *Value) Bool(env Env, index int) (bool, bool) {
	s, ok := v.resolve(env, KindBool, index)
	return s.b, ok
}

// Vector resolves item index as a vector.
func (v *Value) Vector(env Env, index int) (types.Vector, bool) {
	s, ok := v.resolve(env, KindVector, index)
	return s.v, ok
}

// String returns item index verbatim. Random ranges do not apply.
func (v *Value) String(env Env, index int) (string, bool) {
	i, ok := v.itemIndex(env, index)
	if !ok {
		env.logger().Warn("list index out of range", "value", v.literal, "index", index, "count", len(v.items))
		return "", false
	}
	return v.Item(i)
}
