// Package value implements the dynamically typed values that flow through
// themeup: parsed YAML documents, config variables and command line
// assignments.
//
// A Value is one of Null, Bool, Number, String, Sequence or Mapping. The set
// is closed; consumers switch over the concrete types.
//
// Documents are parsed with gopkg.in/yaml.v3 at the node level so that
// integer and float literals keep their lexical kind, duplicate mapping keys
// are rejected with the offending line, and syntax errors carry the line
// reported by the YAML parser.
package value
