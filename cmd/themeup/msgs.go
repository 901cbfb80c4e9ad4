package themeup

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Apply a color theme to your dotfile templates"

	// Flag descriptions
	MsgFlagTheme      = "Theme to apply (overrides THEMEUP_THEME and config.yaml)"
	MsgFlagListThemes = "List available themes and exit"
	MsgFlagConfigDir  = "Config directory (default $XDG_CONFIG_HOME/themeup)"
	MsgFlagHooks      = "Hooks to run instead of the configured ones"
	MsgFlagVariable   = "Set a variable (key=value), may be repeated"
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Render templates without writing them or running hooks"
	MsgFlagCreateDirs = "Create missing parent directories of template targets"
	MsgFlagPreview    = "Print the theme's palette"
	MsgFlagFormat     = "Output format: auto, term, text or json"

	MsgVersionTemplate = "{{.Name}} {{.Version}} (commit %s, built %s)\n"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)
)
