package value

import (
	"regexp"
	"strconv"
	"strings"
)

var plainScalar = regexp.MustCompile(`^[A-Za-z0-9_./+-]+( [A-Za-z0-9_./+-]+)*$`)

// Serialize renders v as a single line of text. Scalars print bare (Null is
// empty); sequences and mappings print as flow-style YAML with sorted keys,
// which Parse reads back to the same value.
func Serialize(v Value) string {
	switch v := v.(type) {
	case Null:
		return ""
	case String:
		return string(v)
	case Sequence, Mapping:
		var b strings.Builder
		writeFlow(&b, v)
		return b.String()
	default:
		return scalar(v)
	}
}

func scalar(v Value) string {
	switch v := v.(type) {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(v))
	case Number:
		switch v.String() {
		case "NaN":
			return ".nan"
		case "+Inf":
			return ".inf"
		case "-Inf":
			return "-.inf"
		}
		return v.String()
	case String:
		return quote(string(v))
	default:
		return ""
	}
}

func writeFlow(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case Sequence:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeFlow(b, item)
		}
		b.WriteByte(']')
	case Mapping:
		b.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quote(k))
			b.WriteString(": ")
			writeFlow(b, v[k])
		}
		b.WriteByte('}')
	default:
		b.WriteString(scalar(v))
	}
}

// quote leaves strings plain when YAML would read them back as the same
// string and double-quotes everything else.
func quote(s string) string {
	if plainScalar.MatchString(s) {
		if _, isString := ParseScalar(s).(String); isString {
			return s
		}
	}
	return strconv.Quote(s)
}
