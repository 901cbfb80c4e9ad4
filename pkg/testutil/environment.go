package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/stretchr/testify/require"
)

// ConfigRoot is where Environment places its config directory.
const ConfigRoot = "/home/test/.config/themeup"

// Environment is an in-memory config directory for a single test.
type Environment struct {
	t    *testing.T
	FS   filesystem.FS
	Dirs paths.Directories
}

// NewEnvironment creates the themes, templates and hooks directories on a
// fresh in-memory filesystem.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	env := &Environment{
		t:    t,
		FS:   NewTestFS(),
		Dirs: paths.New(ConfigRoot),
	}
	for _, dir := range []string{env.Dirs.ThemeDir, env.Dirs.TemplateDir, env.Dirs.HookDir} {
		require.NoError(t, env.FS.MkdirAll(dir, 0755))
	}
	return env
}

// WriteTheme stores a theme document as <themes>/<name>.yaml.
func (e *Environment) WriteTheme(name, contents string) string {
	e.t.Helper()
	return e.WriteFile(filepath.Join(e.Dirs.ThemeDir, name+".yaml"), contents)
}

// WriteTemplate stores a template source file.
func (e *Environment) WriteTemplate(source, contents string) string {
	e.t.Helper()
	return e.WriteFile(filepath.Join(e.Dirs.TemplateDir, source), contents)
}

// WriteConfig stores config.yaml.
func (e *Environment) WriteConfig(contents string) string {
	e.t.Helper()
	return e.WriteFile(e.Dirs.ConfigFile, contents)
}

// WriteFile writes contents to path, creating parent directories.
func (e *Environment) WriteFile(path, contents string) string {
	e.t.Helper()
	require.NoError(e.t, filesystem.WriteText(e.FS, path, contents, true))
	return path
}

// ReadFile returns the contents of path, failing the test if it is missing.
func (e *Environment) ReadFile(path string) string {
	e.t.Helper()
	contents, err := filesystem.ReadText(e.FS, path)
	require.NoError(e.t, err)
	return contents
}

// Exists reports whether path exists.
func (e *Environment) Exists(path string) bool {
	_, err := e.FS.Stat(path)
	return err == nil
}
