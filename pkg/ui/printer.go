// Package ui prints command results in terminal, plain text or JSON form.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/themeup/pkg/core"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Printer writes results to one output stream in one format
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a printer, resolving FormatAuto against out
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: Resolve(format, out)}
}

// Format is the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

// ThemeList prints theme names, one per line
func (p *Printer) ThemeList(names []string) error {
	if p.format == FormatJSON {
		if names == nil {
			names = []string{}
		}
		return p.json(map[string]interface{}{"themes": names})
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(p.out, name); err != nil {
			return err
		}
	}
	return nil
}

type templateSummary struct {
	Template string `json:"template"`
	Target   string `json:"target"`
	Written  bool   `json:"written"`
	Output   string `json:"output,omitempty"`
}

type runSummary struct {
	Theme     string            `json:"theme"`
	Templates []templateSummary `json:"templates"`
	Hooks     []string          `json:"hooks"`
	Warnings  []string          `json:"warnings"`
}

// Summary prints what a run rendered and which items failed. In a dry run
// the rendered text of every template is included.
func (p *Printer) Summary(result *core.Result) error {
	summary := runSummary{
		Theme:     result.Theme.Name,
		Templates: []templateSummary{},
		Hooks:     []string{},
		Warnings:  []string{},
	}
	for _, r := range result.Templates.Rendered {
		s := templateSummary{Template: r.Template.Name, Target: r.Template.Target, Written: r.Written}
		if !r.Written {
			s.Output = r.Output
		}
		summary.Templates = append(summary.Templates, s)
	}
	summary.Hooks = append(summary.Hooks, result.Hooks.Ran...)
	for _, err := range result.Failures() {
		summary.Warnings = append(summary.Warnings, err.Error())
	}

	if p.format == FormatJSON {
		return p.json(summary)
	}

	var b strings.Builder
	b.WriteString(p.header("Theme: " + summary.Theme))
	b.WriteString("\n")
	for _, t := range summary.Templates {
		verb := "rendered"
		if !t.Written {
			verb = "would render"
		}
		fmt.Fprintf(&b, "%s %s -> %s\n", p.style("Success", verb), t.Template, t.Target)
		if t.Output != "" {
			b.WriteString(p.style("Muted", indent(t.Output)))
			b.WriteString("\n")
		}
	}
	for _, h := range summary.Hooks {
		fmt.Fprintf(&b, "%s %s\n", p.style("Success", "ran hook"), h)
	}
	for _, w := range summary.Warnings {
		fmt.Fprintf(&b, "%s\n", p.style("Warning", "Warning: "+w))
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}

// Palette prints every theme color. Terminal output shows a swatch next to
// each entry.
func (p *Printer) Palette(t *theme.Theme) error {
	colors := t.Colors()

	if p.format == FormatJSON {
		palette := map[string]map[string]string{}
		for _, c := range colors {
			if palette[c.Group] == nil {
				palette[c.Group] = map[string]string{}
			}
			palette[c.Group][c.Name] = c.Hex
		}
		return p.json(map[string]interface{}{"theme": t.Name, "colors": palette})
	}

	var b strings.Builder
	group := ""
	for _, c := range colors {
		if c.Group != group {
			group = c.Group
			b.WriteString(p.header(group))
			b.WriteString("\n")
		}
		if p.format == FormatTerminal {
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render("    "))
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%-10s %s\n", c.Name, c.Hex)
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}

// FormatError renders a fatal error. JSON output carries the error code and
// details; text output adds a hint for the common mistakes.
func FormatError(err error, format Format) string {
	if format == FormatJSON {
		doc := map[string]interface{}{
			"error": err.Error(),
			"code":  string(errors.GetErrorCode(err)),
		}
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			doc["details"] = details
		}
		data, _ := json.MarshalIndent(doc, "", "  ")
		return string(data)
	}

	msg := fmt.Sprintf("Error: %v", err)
	if format == FormatTerminal {
		msg = GetStyle("Error").Render(msg)
	}
	if h := hint(err); h != "" {
		if format == FormatTerminal {
			h = GetStyle("Muted").Render(h)
		}
		msg += "\n" + h
	}
	return msg
}

func hint(err error) string {
	path, _ := errors.GetErrorDetails(err)["path"].(string)

	if errors.IsErrorCode(err, errors.ErrThemeNotFound) {
		return "Run 'themeup --list-themes' to see the available themes"
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidVariable:
		return "Variables are set with --variable key=value"
	case errors.ErrConfigParse, errors.ErrConfigInvalid:
		if path != "" {
			return "Check " + path
		}
	}
	return ""
}

func (p *Printer) header(s string) string {
	if p.format != FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func (p *Printer) style(name, s string) string {
	if p.format != FormatTerminal {
		return s
	}
	return GetStyle(name).Render(s)
}

func (p *Printer) json(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
