// Package paths provides the directory layout used by themeup.
//
// Everything lives below one config directory:
//
//	<config_dir>/config.yaml
//	<config_dir>/themes/<name>.yaml
//	<config_dir>/templates/<source>
//	<config_dir>/hooks/<name>
//
// # Environment Variables
//
//   - THEMEUP_CONFIG_DIR: overrides the config directory
//     (default: $XDG_CONFIG_HOME/themeup)
//
// The layout is built once at startup with New and passed explicitly to the
// components that need it.
package paths
