// Package renderer executes templates against a variables.Context.
//
// Templates use Go text/template syntax. The context is reachable both as
// data ({{.variables.name}}) and through the "variables" and "colors"
// functions ({{variables.name}}, {{colors.normal.red}}). Rendering is strict:
// a reference to an undefined variable fails instead of printing nothing.
//
// Helpers:
//
//	hex n            8-bit integer as lower case hex ({{hex 255}} -> ff)
//	div a b          a / b as a float ({{div 8 2}} -> 4.0)
//	mul a b          a * b as a float
//	int n            truncates toward zero into an unsigned integer
//	lighten c amt    moves a #RRGGBB color toward white
//	darken c amt     moves a #RRGGBB color toward black
//	saturate c amt   changes the HSL saturation
//	shiftHue c deg   rotates the HSL hue
//	rgba c alpha     formats rgba(r, g, b, a)
//
// Every failure is returned as a *RenderError.
package renderer

import (
	"bytes"
	"text/template"

	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/variables"
	"github.com/rs/zerolog"
)

// Renderer renders templates against one fixed context
type Renderer struct {
	data   map[string]any
	funcs  template.FuncMap
	logger zerolog.Logger
}

// New creates a renderer for ctx. The context is converted once and shared
// read-only by every Render call.
func New(ctx variables.Context) *Renderer {
	data := ctx.Data()

	funcs := helperFuncs()
	funcs["variables"] = func() any { return data["variables"] }
	funcs["colors"] = func() any { return data["colors"] }

	return &Renderer{
		data:   data,
		funcs:  funcs,
		logger: logging.GetLogger("renderer"),
	}
}

// Render parses and executes text. name identifies the template in errors and
// in {{template}} calls.
func (r *Renderer) Render(name, text string) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(r.funcs).
		Parse(text)
	if err != nil {
		rerr := translate(name, text, err)
		r.logger.Debug().Err(err).Str("template", name).Stringer("kind", rerr.Kind).Msg("parse failed")
		return "", rerr
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, r.data); err != nil {
		rerr := translate(name, text, err)
		r.logger.Debug().Err(err).Str("template", name).Stringer("kind", rerr.Kind).Msg("execution failed")
		return "", rerr
	}

	r.logger.Trace().Str("template", name).Int("bytes", out.Len()).Msg("rendered")
	return out.String(), nil
}
