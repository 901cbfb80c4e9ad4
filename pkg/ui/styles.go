package ui

import (
	_ "embed"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition referring to named colors
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig is the shape of styles.yaml
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	stylesOnce sync.Once
	registry   map[string]lipgloss.Style
)

// LoadStyles builds a style registry from a styles.yaml document
func LoadStyles(data []byte) (map[string]lipgloss.Style, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if c, ok := colors[def.Foreground]; ok {
			style = style.Foreground(c)
		}
		styles[name] = style
	}
	return styles, nil
}

// GetStyle returns a named style, or the empty style if it is unknown
func GetStyle(name string) lipgloss.Style {
	stylesOnce.Do(func() {
		styles, err := LoadStyles(embeddedStyles)
		if err != nil {
			styles = map[string]lipgloss.Style{}
		}
		registry = styles
	})

	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
