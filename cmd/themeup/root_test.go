package themeup

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/testutil"
	"github.com/arthur-debert/themeup/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dirs paths.Directories
	out  string
}

func setup(t *testing.T) fixture {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("THEMEUP_THEME", "")
	t.Setenv("THEMEUP_HOOKS", "")
	require.NoError(t, os.Unsetenv("THEMEUP_THEME"))
	require.NoError(t, os.Unsetenv("THEMEUP_HOOKS"))

	root := t.TempDir()
	f := fixture{dirs: paths.New(filepath.Join(root, "config")), out: filepath.Join(root, "out")}
	for _, dir := range []string{f.dirs.ThemeDir, f.dirs.TemplateDir, f.dirs.HookDir, f.out} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	write := func(path, contents string, mode os.FileMode) {
		require.NoError(t, os.WriteFile(path, []byte(contents), mode))
	}
	write(filepath.Join(f.dirs.ThemeDir, "monokai.yaml"), testutil.MonokaiTheme, 0644)
	write(filepath.Join(f.dirs.ThemeDir, "nord.yaml"), testutil.NordTheme, 0644)
	write(filepath.Join(f.dirs.ThemeDir, "README.md"), "not a theme", 0644)
	write(filepath.Join(f.dirs.TemplateDir, "colors"), "bg={{colors.special.background}} font={{variables.font}}\n", 0644)
	write(filepath.Join(f.dirs.HookDir, "notify"), "#!/bin/sh\necho \"hook saw $FONT\"\n", 0755)
	write(f.dirs.ConfigFile, "variables:\n  font: mono\ntemplates:\n  - source: colors\n    target: "+
		filepath.Join(f.out, "colors")+"\n", 0644)
	return f
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListThemes(t *testing.T) {
	f := setup(t)

	out, err := execute(t, "--config-dir", f.dirs.ConfigDir, "--list-themes", "--theme", "ignored", "-V", "bad")
	require.NoError(t, err)
	assert.Equal(t, "monokai\nnord\n", out)
}

func TestRenderTemplates(t *testing.T) {
	f := setup(t)

	out, err := execute(t, "-c", f.dirs.ConfigDir, "-t", "monokai", "-V", "font=Fira Code", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: monokai")
	assert.Contains(t, out, "rendered colors -> "+filepath.Join(f.out, "colors"))

	data, err := os.ReadFile(filepath.Join(f.out, "colors"))
	require.NoError(t, err)
	assert.Equal(t, "bg=#222222 font=Fira Code\n", string(data))
}

func TestHooksFlag(t *testing.T) {
	f := setup(t)

	out, err := execute(t, "-c", f.dirs.ConfigDir, "-t", "nord", "--hooks", "notify", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "hook saw mono\n")
	assert.Contains(t, out, "ran hook notify")
}

func TestDryRunJSON(t *testing.T) {
	f := setup(t)

	out, err := execute(t, "-c", f.dirs.ConfigDir, "-t", "nord", "--dry-run", "--format", "json")
	require.NoError(t, err)

	var summary struct {
		Theme     string `json:"theme"`
		Templates []struct {
			Template string `json:"template"`
			Written  bool   `json:"written"`
			Output   string `json:"output"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "nord", summary.Theme)
	require.Len(t, summary.Templates, 1)
	assert.False(t, summary.Templates[0].Written)
	assert.Equal(t, "bg=#2e3440 font=mono\n", summary.Templates[0].Output)

	_, err = os.Stat(filepath.Join(f.out, "colors"))
	assert.True(t, os.IsNotExist(err))
}

func TestPreview(t *testing.T) {
	f := setup(t)

	out, err := execute(t, "-c", f.dirs.ConfigDir, "-t", "monokai", "--preview", "--dry-run", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "normal\n")
	assert.Contains(t, out, "red        #fc618d\n")
}

func TestPerItemFailureIsNotFatal(t *testing.T) {
	f := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.dirs.TemplateDir, "colors"), []byte("{{variables.missing}}"), 0644))

	out, err := execute(t, "-c", f.dirs.ConfigDir, "-t", "monokai", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: could not render template 'colors' (missing variable 'variables.missing' at line 1")
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"no theme", nil, errors.ErrThemeNotSpecified},
		{"unknown theme", []string{"-t", "gruvbox"}, errors.ErrThemeNotFound},
		{"malformed variable", []string{"-t", "nord", "-V", "novalue"}, errors.ErrInvalidVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			_, err := execute(t, append([]string{"-c", f.dirs.ConfigDir}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestBadFormat(t *testing.T) {
	f := setup(t)

	_, err := execute(t, "-c", f.dirs.ConfigDir, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "monokai")
	assert.Error(t, err)
}

func TestThemeCompletion(t *testing.T) {
	f := setup(t)

	out, err := execute(t, "__complete", "--config-dir", f.dirs.ConfigDir, "--theme", "")
	require.NoError(t, err)
	assert.Contains(t, out, "monokai\nnord\n")
}

func TestErrorFormat(t *testing.T) {
	f := setup(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-c", f.dirs.ConfigDir, "-t", "gruvbox", "--format", "json"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ui.FormatJSON, ErrorFormat(cmd, &bytes.Buffer{}))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(ui.FormatError(err, ErrorFormat(cmd, &bytes.Buffer{}))), &doc))
	assert.Equal(t, "THEME_NOT_FOUND", doc["code"])

	assert.Equal(t, ui.FormatText, ErrorFormat(NewRootCmd(), &bytes.Buffer{}))
}
