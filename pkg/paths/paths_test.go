package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	dirs := New("/tmp/cfg")

	assert.Equal(t, "/tmp/cfg", dirs.ConfigDir)
	assert.Equal(t, "/tmp/cfg/config.yaml", dirs.ConfigFile)
	assert.Equal(t, "/tmp/cfg/themes", dirs.ThemeDir)
	assert.Equal(t, "/tmp/cfg/templates", dirs.TemplateDir)
	assert.Equal(t, "/tmp/cfg/hooks", dirs.HookDir)
}

func TestDefaultConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/themeup")
		assert.Equal(t, "/custom/themeup", DefaultConfigDir())
		assert.Equal(t, "/custom/themeup/themes", New("").ThemeDir)
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		assert.Equal(t, "/xdg/config/themeup", DefaultConfigDir())
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/.config", filepath.Join(home, ".config")},
		{"~/.config/dunst/dunstrc", filepath.Join(home, ".config/dunst/dunstrc")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.input))
		})
	}
}
