// Package theme loads named color themes.
//
// A theme file lives at <theme_dir>/<name>.yaml and carries three special
// colors plus the normal and bright 8-color ANSI palettes:
//
//	special:
//	  background: "#222222"
//	  foreground: "#f7f1ff"
//	  cursor: "#f7f1ff"
//	normal:
//	  black: "#363537"
//	  ...
//	bright:
//	  black: "#69676c"
//	  ...
//
// All 19 colors are required and must be "#RRGGBB".
package theme

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/value"
	"gopkg.in/yaml.v3"
)

// Extension is the file extension of theme files
const Extension = ".yaml"

// Special holds the terminal's special colors
type Special struct {
	Background string `yaml:"background" validate:"required,hexrgb"`
	Foreground string `yaml:"foreground" validate:"required,hexrgb"`
	Cursor     string `yaml:"cursor" validate:"required,hexrgb"`
}

// ANSI holds one 8-color ANSI palette
type ANSI struct {
	Black   string `yaml:"black" validate:"required,hexrgb"`
	Red     string `yaml:"red" validate:"required,hexrgb"`
	Green   string `yaml:"green" validate:"required,hexrgb"`
	Yellow  string `yaml:"yellow" validate:"required,hexrgb"`
	Blue    string `yaml:"blue" validate:"required,hexrgb"`
	Magenta string `yaml:"magenta" validate:"required,hexrgb"`
	Cyan    string `yaml:"cyan" validate:"required,hexrgb"`
	White   string `yaml:"white" validate:"required,hexrgb"`
}

// Theme is a named palette
type Theme struct {
	Name    string  `yaml:"-"`
	Special Special `yaml:"special"`
	Normal  ANSI    `yaml:"normal"`
	Bright  ANSI    `yaml:"bright"`
}

// NamedColor is one entry of a theme's palette
type NamedColor struct {
	Group string
	Name  string
	Hex   string
}

// Parse decodes and validates a theme document
func Parse(data []byte) (*Theme, error) {
	return parse(data, "theme")
}

func parse(data []byte, label string) (*Theme, error) {
	// Syntax and duplicate keys are checked by the value parser so the
	// error carries a location.
	if _, err := value.Parse(string(data)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeParse, "could not parse %s", label)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeParse, "could not parse %s", label)
	}
	if err := validate(&t); err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeInvalid, "invalid %s", label)
	}
	return &t, nil
}

// Load reads <themeDir>/<name>.yaml
func Load(fsys filesystem.FS, themeDir, name string) (*Theme, error) {
	logger := logging.GetLogger("theme")
	path := filepath.Join(themeDir, name+Extension)

	contents, err := filesystem.ReadText(fsys, path)
	if err != nil {
		code := errors.ErrThemeRead
		var readErr *filesystem.ReadError
		if errors.As(err, &readErr) && readErr.Kind == filesystem.ReadNotFound {
			code = errors.ErrThemeNotFound
		}
		return nil, errors.Wrapf(err, code, "could not read theme '%s'", name).
			WithDetail("path", path)
	}

	t, err := parse([]byte(contents), "theme '"+name+"'")
	if err != nil {
		return nil, err
	}
	t.Name = name

	logger.Debug().Str("theme", name).Str("path", path).Msg("loaded theme")
	return t, nil
}

// List returns the sorted names of the themes in themeDir. Only files with
// the .yaml extension count; directories are skipped whatever their name.
func List(fsys filesystem.FS, themeDir string) ([]string, error) {
	entries, err := filesystem.ListDir(fsys, themeDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeList, "could not list themes").
			WithDetail("path", themeDir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}

// Colors returns the palette in a stable order: special, normal, bright
func (t *Theme) Colors() []NamedColor {
	colors := []NamedColor{
		{"special", "background", t.Special.Background},
		{"special", "foreground", t.Special.Foreground},
		{"special", "cursor", t.Special.Cursor},
	}
	colors = append(colors, ansiColors("normal", t.Normal)...)
	colors = append(colors, ansiColors("bright", t.Bright)...)
	return colors
}

// Value returns the theme as a mapping of group -> name -> hex string
func (t *Theme) Value() value.Mapping {
	out := value.Mapping{}
	for _, c := range t.Colors() {
		group, ok := out[c.Group].(value.Mapping)
		if !ok {
			group = value.Mapping{}
			out[c.Group] = group
		}
		group[c.Name] = value.String(c.Hex)
	}
	return out
}

func ansiColors(group string, a ANSI) []NamedColor {
	return []NamedColor{
		{group, "black", a.Black},
		{group, "red", a.Red},
		{group, "green", a.Green},
		{group, "yellow", a.Yellow},
		{group, "blue", a.Blue},
		{group, "magenta", a.Magenta},
		{group, "cyan", a.Cyan},
		{group, "white", a.White},
	}
}
