package theme

import (
	"strings"
	"testing"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/testutil"
	"github.com/arthur-debert/themeup/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	th, err := Parse([]byte(testutil.MonokaiTheme))
	require.NoError(t, err)

	assert.Equal(t, "#222222", th.Special.Background)
	assert.Equal(t, "#f7f1ff", th.Special.Foreground)
	assert.Equal(t, "#fc618d", th.Normal.Red)
	assert.Equal(t, "#69676c", th.Bright.Black)
	assert.Equal(t, "#f7f1ff", th.Bright.White)
}

func TestParseToleratesUnknownFields(t *testing.T) {
	doc := testutil.MonokaiTheme + "author: someone\n"
	_, err := Parse([]byte(doc))
	assert.NoError(t, err)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		code     errors.ErrorCode
		contains []string
	}{
		{
			name:     "missing color",
			doc:      strings.Replace(testutil.MonokaiTheme, "  cursor: '#f7f1ff'\n", "", 1),
			code:     errors.ErrThemeInvalid,
			contains: []string{"missing colors: special.cursor"},
		},
		{
			name:     "malformed color",
			doc:      strings.Replace(testutil.MonokaiTheme, "red: '#fc618d'", "red: 'fc618d'", 1),
			code:     errors.ErrThemeInvalid,
			contains: []string{"malformed colors:", `normal.red ("fc618d")`},
		},
		{
			name:     "unquoted hex is a comment",
			doc:      strings.Replace(testutil.MonokaiTheme, "  cursor: '#f7f1ff'", "  cursor: #f7f1ff", 1),
			code:     errors.ErrThemeInvalid,
			contains: []string{"special.cursor"},
		},
		{
			name:     "syntax error",
			doc:      "special: [\n",
			code:     errors.ErrThemeParse,
			contains: []string{"could not parse theme", "at line"},
		},
		{
			name:     "empty document",
			doc:      "",
			code:     errors.ErrThemeInvalid,
			contains: []string{"missing colors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestParseCollectsAllFieldErrors(t *testing.T) {
	doc := "special:\n  background: '#000000'\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	var colorErr *ColorError
	require.True(t, errors.As(err, &colorErr))
	assert.Len(t, colorErr.Missing, 18)
	assert.Empty(t, colorErr.Invalid)
}

func TestLoad(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteTheme("monokai", testutil.MonokaiTheme)

	th, err := Load(env.FS, env.Dirs.ThemeDir, "monokai")
	require.NoError(t, err)
	assert.Equal(t, "monokai", th.Name)
	assert.Equal(t, "#222222", th.Special.Background)
}

func TestLoadErrors(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteTheme("broken", "special: [")

	_, err := Load(env.FS, env.Dirs.ThemeDir, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeNotFound))
	assert.Equal(t, "could not read theme 'missing' (file not found)", err.Error())
	assert.Equal(t, env.Dirs.ThemeDir+"/missing.yaml", errors.GetErrorDetails(err)["path"])

	var readErr *filesystem.ReadError
	assert.True(t, errors.As(err, &readErr))

	_, err = Load(env.FS, env.Dirs.ThemeDir, "broken")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse))
	assert.Contains(t, err.Error(), "could not parse theme 'broken'")
}

func TestList(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteTheme("nord", testutil.NordTheme)
	env.WriteTheme("monokai", testutil.MonokaiTheme)
	env.WriteFile(env.Dirs.ThemeDir+"/README.md", "notes")
	env.WriteFile(env.Dirs.ThemeDir+"/gruvbox.yml", "x")
	require.NoError(t, env.FS.MkdirAll(env.Dirs.ThemeDir+"/archive.yaml", 0755))
	env.WriteFile(env.Dirs.ThemeDir+"/old/solarized.yaml", testutil.NordTheme)

	names, err := List(env.FS, env.Dirs.ThemeDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"monokai", "nord"}, names)
}

func TestListMissingDir(t *testing.T) {
	fs := testutil.NewTestFS()

	_, err := List(fs, "/nowhere/themes")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeList))
}

func TestColorsAndValue(t *testing.T) {
	th, err := Parse([]byte(testutil.MonokaiTheme))
	require.NoError(t, err)

	colors := th.Colors()
	require.Len(t, colors, 19)
	assert.Equal(t, NamedColor{"special", "background", "#222222"}, colors[0])
	assert.Equal(t, NamedColor{"bright", "white", "#f7f1ff"}, colors[18])

	m := th.Value()
	assert.Equal(t, []string{"bright", "normal", "special"}, m.Keys())

	red, ok := m.Get("normal.red")
	require.True(t, ok)
	assert.Equal(t, value.String("#fc618d"), red)
}
