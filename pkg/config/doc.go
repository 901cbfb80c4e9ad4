// Package config loads <config_dir>/config.yaml.
//
// Example:
//
//	theme: monokai
//	hooks:
//	  - reload-dunst
//	variables:
//	  font: Fira Code
//	  font_size: 12
//	templates:
//	  - source: dunstrc
//	    target: ~/.config/dunst/dunstrc
//
// Sources are merged with koanf, later ones winning:
//
//  1. embedded defaults
//  2. config.yaml (optional; a missing file is an empty config)
//  3. THEMEUP_THEME and THEMEUP_HOOKS (comma separated)
//  4. overrides from the command line
//
// The variables block is parsed with the value package so numbers keep
// their written form. Template targets have a leading ~ expanded.
package config
