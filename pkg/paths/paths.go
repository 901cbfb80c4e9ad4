package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for themeup
	EnvConfigDir = "THEMEUP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for themeup-specific files
	AppDirName = "themeup"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.yaml"

	// ThemesDir is the subdirectory for themes
	ThemesDir = "themes"

	// TemplatesDir is the subdirectory for template sources
	TemplatesDir = "templates"

	// HooksDir is the subdirectory for hook executables
	HooksDir = "hooks"
)

// Directories is the resolved directory layout for one run
type Directories struct {
	ConfigDir   string
	ConfigFile  string
	ThemeDir    string
	TemplateDir string
	HookDir     string
}

// New builds the layout below configDir. An empty configDir resolves to
// DefaultConfigDir.
func New(configDir string) Directories {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	configDir = ExpandHome(configDir)

	return Directories{
		ConfigDir:   configDir,
		ConfigFile:  filepath.Join(configDir, ConfigFileName),
		ThemeDir:    filepath.Join(configDir, ThemesDir),
		TemplateDir: filepath.Join(configDir, TemplatesDir),
		HookDir:     filepath.Join(configDir, HooksDir),
	}
}

// DefaultConfigDir returns $THEMEUP_CONFIG_DIR or $XDG_CONFIG_HOME/themeup
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ExpandHome expands a leading ~ to the home directory. Paths of the form
// ~user are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir := HomeDir()
	if homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// HomeDir returns the user's home directory, or "" if it cannot be found
func HomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return xdg.Home
}
