package value

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedAssignment is returned for command line variables that are not
// "key=value" pairs.
var ErrMalformedAssignment = errors.New("variables should be specified as 'key=value' pairs")

// ParseError reports a document that could not be parsed. Line and Column
// are 1-based and zero when unknown.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Reason
	}
	if e.Column == 0 {
		return fmt.Sprintf("%s at line %d", e.Reason, e.Line)
	}
	return fmt.Sprintf("%s at line %d column %d", e.Reason, e.Line, e.Column)
}

var yamlLineError = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

// Parse parses a YAML document. An empty document is Null. Duplicate mapping
// keys are an error.
func Parse(text string) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, newParseError(err)
	}
	return fromNode(&doc)
}

// ParseScalar parses a single command line value. Text that is not a valid
// document, or that parses to nothing (like "#ff0000", a YAML comment), is
// kept verbatim as a String.
func ParseScalar(text string) Value {
	v, err := Parse(text)
	if err != nil {
		return String(text)
	}
	if _, isNull := v.(Null); isNull && !nullLiterals[strings.TrimSpace(text)] {
		return String(text)
	}
	return v
}

var nullLiterals = map[string]bool{"~": true, "null": true, "Null": true, "NULL": true}

// ParseAssignment splits "key=value" (or "key:value") and parses the value
// with ParseScalar.
func ParseAssignment(s string) (string, Value, error) {
	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		idx = strings.IndexByte(s, ':')
	}
	if idx <= 0 || idx == len(s)-1 {
		return "", nil, ErrMalformedAssignment
	}
	return s[:idx], ParseScalar(s[idx+1:]), nil
}

func newParseError(err error) *ParseError {
	msg := err.Error()
	if m := yamlLineError.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ParseError{Line: line, Reason: m[2]}
	}
	return &ParseError{Reason: strings.TrimPrefix(msg, "yaml: ")}
}

func nodeError(n *yaml.Node, format string, args ...any) *ParseError {
	return &ParseError{Line: n.Line, Column: n.Column, Reason: fmt.Sprintf(format, args...)}
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case 0:
		return Null{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		seq := make(Sequence, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.MappingNode:
		return fromMapping(n)
	default:
		return nil, nodeError(n, "unsupported yaml node")
	}
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, nodeError(n, "invalid boolean %q", n.Value)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, nodeError(n, "invalid integer %q", n.Value)
		}
		return Number{f: f, integral: true}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, nodeError(n, "invalid number %q", n.Value)
		}
		return Float(f), nil
	default:
		return String(n.Value), nil
	}
}

func fromMapping(n *yaml.Node) (Value, error) {
	out := make(Mapping, len(n.Content)/2)
	lines := make(map[string]int, len(n.Content)/2)
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}
		if keyNode.ShortTag() == "!!merge" {
			merges = append(merges, valueNode)
			continue
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, nodeError(keyNode, "mapping keys must be scalars")
		}

		key := keyNode.Value
		if first, dup := lines[key]; dup {
			return nil, nodeError(keyNode, "duplicate key %q (first defined at line %d)", key, first)
		}
		lines[key] = keyNode.Line

		v, err := fromNode(valueNode)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}

	// Merge keys ("<<: *base") never override explicit keys.
	for _, merge := range merges {
		merged, err := fromNode(merge)
		if err != nil {
			return nil, err
		}
		sources := Sequence{merged}
		if seq, ok := merged.(Sequence); ok {
			sources = seq
		}
		for _, src := range sources {
			m, ok := src.(Mapping)
			if !ok {
				return nil, nodeError(merge, "merge value must be a mapping")
			}
			for k, v := range m {
				if _, exists := out[k]; !exists {
					out[k] = v
				}
			}
		}
	}

	return out, nil
}
