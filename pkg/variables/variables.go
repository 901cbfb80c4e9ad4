// Package variables builds the rendering context for one run.
//
// The context has two regions that never collide: "variables" holds the
// config file variables overlaid with the command line ones, "colors" holds
// the theme palette. Precedence for Lookup is command line, then config, then
// theme.
package variables

import (
	"sort"
	"strings"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/theme"
	"github.com/arthur-debert/themeup/pkg/value"
)

// ColorPrefix is the prefix of the environment variables exporting the palette
const ColorPrefix = "COLOR_"

// Assignment is one key=value pair from the command line
type Assignment struct {
	Key   string
	Value value.Value
}

// ParseAssignments parses command line variables. The first malformed entry
// aborts with ErrInvalidVariable.
func ParseAssignments(args []string) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(args))
	for _, arg := range args {
		key, v, err := value.ParseAssignment(arg)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidVariable, "invalid variable '%s'", arg).
				WithDetail("variable", arg)
		}
		assignments = append(assignments, Assignment{Key: key, Value: v})
	}
	return assignments, nil
}

// Context is the merged, read-only input to rendering and hooks
type Context struct {
	Variables value.Mapping
	Colors    value.Mapping
}

// Merge layers the sources. Later command line assignments win over earlier
// ones with the same key.
func Merge(t *theme.Theme, config value.Mapping, cli []Assignment) Context {
	logger := logging.GetLogger("variables")

	top := make(value.Mapping, len(cli))
	for _, a := range cli {
		top[a.Key] = a.Value
	}

	ctx := Context{
		Variables: value.Mapping{}.Overlay(config).Overlay(top),
		Colors:    value.Mapping{},
	}
	if t != nil {
		ctx.Colors = t.Value()
	}

	logger.Debug().
		Int("config", len(config)).
		Int("cli", len(top)).
		Int("total", len(ctx.Variables)).
		Msg("merged variables")
	return ctx
}

// Lookup resolves a dotted key against the variables, then the theme colors
func (c Context) Lookup(key string) (value.Value, bool) {
	if v, ok := c.Variables.Get(key); ok {
		return v, true
	}
	return c.Colors.Get(key)
}

// Data returns the context in the shape the template engine consumes
func (c Context) Data() map[string]any {
	return map[string]any{
		"variables": value.Native(c.Variables),
		"colors":    value.Native(c.Colors),
	}
}

// Environ returns NAME=value pairs for hook processes, sorted by name.
// Variables are exported under their upper-snake-cased key and the palette
// as COLOR_<GROUP>_<NAME>. A variable shadows a color export of the same name.
func (c Context) Environ() []string {
	vars := make(map[string]string)

	for _, group := range c.Colors.Keys() {
		colors, ok := c.Colors[group].(value.Mapping)
		if !ok {
			continue
		}
		for _, name := range colors.Keys() {
			vars[EnvName(ColorPrefix+group+"_"+name)] = value.Serialize(colors[name])
		}
	}
	for _, key := range c.Variables.Keys() {
		vars[EnvName(key)] = value.Serialize(c.Variables[key])
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	env := make([]string, 0, len(names))
	for _, name := range names {
		env = append(env, name+"="+vars[name])
	}
	return env
}

// EnvName converts a variable key to an environment variable name:
// upper case, with every character outside [A-Z0-9_] replaced by '_'.
func EnvName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}
