package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arthur-debert/themeup/pkg/core"
	themeuperrors "github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/templates"
	"github.com/arthur-debert/themeup/pkg/testutil"
	"github.com/arthur-debert/themeup/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"text", FormatText},
		{"plain", FormatText},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseFormat("yaml")
	assert.Error(t, err)

	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatText, Resolve(FormatAuto, &buf))
	assert.Equal(t, FormatJSON, Resolve(FormatJSON, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, Resolve(FormatAuto, &buf))
}

func TestGetStyle(t *testing.T) {
	assert.True(t, GetStyle("Error").GetBold())
	assert.False(t, GetStyle("NoSuchStyle").GetBold())

	_, err := LoadStyles([]byte("colors: ["))
	assert.Error(t, err)
}

func TestThemeList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatText).ThemeList([]string{"monokai", "nord"}))
	assert.Equal(t, "monokai\nnord\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatJSON).ThemeList(nil))
	assert.JSONEq(t, `{"themes": []}`, buf.String())
}

func testResult(t *testing.T) *core.Result {
	t.Helper()
	th, err := theme.Parse([]byte(testutil.MonokaiTheme))
	require.NoError(t, err)
	th.Name = "monokai"

	return &core.Result{
		Theme: th,
		Templates: templates.Report{
			Rendered: []templates.Result{
				{Template: templates.Template{Name: "dunstrc", Target: "/out/dunstrc"}, Written: true, Output: "x"},
				{Template: templates.Template{Name: "rofi", Target: "/out/rofi"}, Output: "line1\nline2\n"},
			},
			Failures: []*templates.Error{
				{Template: "broken", Stage: templates.StageRender, Err: errors.New("boom")},
			},
		},
	}
}

func TestSummaryText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatText).Summary(testResult(t)))

	assert.Equal(t, "Theme: monokai\n"+
		"rendered dunstrc -> /out/dunstrc\n"+
		"would render rofi -> /out/rofi\n"+
		"    line1\n    line2\n"+
		"Warning: could not render template 'broken' (boom)\n", buf.String())
}

func TestSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON).Summary(testResult(t)))

	var got runSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "monokai", got.Theme)
	require.Len(t, got.Templates, 2)
	assert.Empty(t, got.Templates[0].Output)
	assert.Equal(t, "line1\nline2\n", got.Templates[1].Output)
	assert.Equal(t, []string{"could not render template 'broken' (boom)"}, got.Warnings)
	assert.Empty(t, got.Hooks)
}

func TestPalette(t *testing.T) {
	th, err := theme.Parse([]byte(testutil.MonokaiTheme))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatText).Palette(th))
	out := buf.String()
	assert.Contains(t, out, "special\nbackground #222222\n")
	assert.Contains(t, out, "bright\nblack      #69676c\n")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTerminal).Palette(th))
	assert.Contains(t, buf.String(), "#fc618d")
}

func TestFormatError(t *testing.T) {
	err := errors.New("no theme specified")
	assert.Equal(t, "Error: no theme specified", FormatError(err, FormatText))
	assert.Contains(t, FormatError(err, FormatTerminal), "Error: no theme specified")
}

func TestFormatErrorHints(t *testing.T) {
	notFound := themeuperrors.Wrapf(errors.New("file not found"), themeuperrors.ErrThemeNotFound,
		"could not read theme '%s'", "gruvbox").WithDetail("path", "/cfg/themes/gruvbox.yaml")
	badConfig := themeuperrors.New(themeuperrors.ErrConfigInvalid, "invalid config").
		WithDetail("path", "/cfg/config.yaml")
	badVariable := themeuperrors.New(themeuperrors.ErrInvalidVariable, "invalid variable 'x'")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"theme not found", notFound,
			"Error: could not read theme 'gruvbox' (file not found)\nRun 'themeup --list-themes' to see the available themes"},
		{"config points at file", badConfig, "Error: invalid config\nCheck /cfg/config.yaml"},
		{"variable syntax", badVariable, "Error: invalid variable 'x'\nVariables are set with --variable key=value"},
		{"no hint", themeuperrors.New(themeuperrors.ErrThemeList, "could not list themes"), "Error: could not list themes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.err, FormatText))
		})
	}
}

func TestFormatErrorJSON(t *testing.T) {
	err := themeuperrors.Wrapf(errors.New("file not found"), themeuperrors.ErrThemeNotFound,
		"could not read theme '%s'", "gruvbox").WithDetail("path", "/cfg/themes/gruvbox.yaml")

	var doc struct {
		Error   string            `json:"error"`
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(FormatError(err, FormatJSON)), &doc))
	assert.Equal(t, "could not read theme 'gruvbox' (file not found)", doc.Error)
	assert.Equal(t, "THEME_NOT_FOUND", doc.Code)
	assert.Equal(t, "/cfg/themes/gruvbox.yaml", doc.Details["path"])

	require.NoError(t, json.Unmarshal([]byte(FormatError(errors.New("boom"), FormatJSON)), &doc))
	assert.Equal(t, "UNKNOWN", doc.Code)
}
