package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is a node of a parsed document
type Value interface {
	isValue()
}

// Null is the absent value
type Null struct{}

// Bool is a boolean value
type Bool bool

// String is a text value
type String string

// Sequence is an ordered list of values
type Sequence []Value

// Mapping maps unique string keys to values
type Mapping map[string]Value

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Number) isValue()   {}
func (String) isValue()   {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// Number is a floating point value that remembers whether it was written as
// an integer, so that 12 prints as "12" and 1.0 prints as "1.0".
type Number struct {
	f        float64
	integral bool
}

// Int creates an integer Number
func Int(i int64) Number {
	return Number{f: float64(i), integral: true}
}

// Float creates a floating point Number
func Float(f float64) Number {
	return Number{f: f}
}

// Float64 returns the numeric value
func (n Number) Float64() float64 {
	return n.f
}

// IsInteger reports whether the number was written as an integer
func (n Number) IsInteger() bool {
	return n.integral
}

// String formats integers without a fraction and floats with at least one
// fractional digit.
func (n Number) String() string {
	switch {
	case math.IsNaN(n.f):
		return "NaN"
	case math.IsInf(n.f, 1):
		return "+Inf"
	case math.IsInf(n.f, -1):
		return "-Inf"
	}

	if math.Abs(n.f) >= 1e21 {
		return strconv.FormatFloat(n.f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(n.f, 'f', -1, 64)
	if !n.integral && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Keys returns the mapping keys in sorted order
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get looks up a dotted path ("colors.normal.red") through nested mappings.
func (m Mapping) Get(path string) (Value, bool) {
	var current Value = m
	for _, part := range strings.Split(path, ".") {
		mapping, ok := current.(Mapping)
		if !ok {
			return nil, false
		}
		current, ok = mapping[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Overlay returns a new mapping with the keys of top replacing those of m.
// Only top-level keys are replaced; nested mappings are not merged.
func (m Mapping) Overlay(top Mapping) Mapping {
	out := make(Mapping, len(m)+len(top))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range top {
		out[k] = v
	}
	return out
}

// Decimal is how a fractional Number reaches the template engine. It is a
// plain float64 to the engine's comparison functions and prints in lexical
// form ("1.0", not "1").
type Decimal float64

func (d Decimal) String() string {
	return Float(float64(d)).String()
}

// Native converts v into the plain Go values the template engine works
// with: string, bool, int64, Decimal, []any and map[string]any. Null becomes
// the empty string so a null variable renders as nothing. Integers outside
// the int64 range are passed as float64.
func Native(v Value) any {
	switch v := v.(type) {
	case Null:
		return ""
	case Bool:
		return bool(v)
	case Number:
		return nativeNumber(v)
	case String:
		return string(v)
	case Sequence:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Native(item)
		}
		return out
	case Mapping:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Native(item)
		}
		return out
	default:
		return ""
	}
}

func nativeNumber(n Number) any {
	if !n.integral {
		return Decimal(n.f)
	}
	if n.f >= math.MinInt64 && n.f < math.MaxInt64 {
		return int64(n.f)
	}
	return n.f
}

// Equal reports whether a and b are the same value
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a.f == b.f && a.integral == b.integral
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Sequence:
		b, ok := b.(Sequence)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case Mapping:
		b, ok := b.(Mapping)
		if !ok || len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
