// Package templates renders the configured template files to their targets.
//
// Each template goes through three stages: read the source from the
// template directory, render it, write the result to the target. A failure
// in any stage is reported as an *Error naming the template and the stage,
// and RenderAll moves on to the next template.
package templates

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/logging"
)

// Stage is the step of the read -> render -> write pipeline that failed
type Stage int

const (
	StageRead Stage = iota
	StageRender
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageRender:
		return "render"
	case StageWrite:
		return "write"
	default:
		return "process"
	}
}

// Error is a failure of one template
type Error struct {
	Template string
	Stage    Stage
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not %s template '%s' (%v)", e.Stage, e.Template, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Renderer renders template text. *renderer.Renderer implements it.
type Renderer interface {
	Render(name, text string) (string, error)
}

// Options control how results are written
type Options struct {
	// CreateDirs creates missing parent directories of targets
	CreateDirs bool
	// DryRun renders without writing
	DryRun bool
}

// Template pairs a source file with the path its output is written to
type Template struct {
	// Name is the source path as configured, relative to the template dir
	Name   string
	Source string
	Target string
}

// New creates a template reading <templateDir>/<source>
func New(source, target, templateDir string) Template {
	return Template{
		Name:   source,
		Source: filepath.Join(templateDir, source),
		Target: target,
	}
}

// Render runs the pipeline for one template and returns the rendered text
func (t Template) Render(fsys filesystem.FS, r Renderer, opts Options) (string, error) {
	logger := logging.GetLogger("templates")

	contents, err := filesystem.ReadText(fsys, t.Source)
	if err != nil {
		return "", &Error{Template: t.Name, Stage: StageRead, Err: err}
	}

	rendered, err := r.Render(t.Name, contents)
	if err != nil {
		return "", &Error{Template: t.Name, Stage: StageRender, Err: err}
	}

	if opts.DryRun {
		logger.Info().Str("template", t.Name).Str("target", t.Target).Msg("dry run, not writing")
		return rendered, nil
	}

	if err := filesystem.WriteText(fsys, t.Target, rendered, opts.CreateDirs); err != nil {
		return "", &Error{Template: t.Name, Stage: StageWrite, Err: err}
	}

	logger.Info().Str("template", t.Name).Str("target", t.Target).Msg("rendered template")
	return rendered, nil
}

// Result is one successfully rendered template
type Result struct {
	Template Template
	Output   string
	Written  bool
}

// Report is the outcome of RenderAll, in configuration order
type Report struct {
	Rendered []Result
	Failures []*Error
}

// RenderAll renders every template. Failures are logged as warnings and
// collected; they never stop the remaining templates.
func RenderAll(fsys filesystem.FS, r Renderer, templates []Template, opts Options) Report {
	logger := logging.GetLogger("templates")
	var report Report

	for _, t := range templates {
		output, err := t.Render(fsys, r, opts)
		if err != nil {
			terr, ok := err.(*Error)
			if !ok {
				terr = &Error{Template: t.Name, Stage: StageRender, Err: err}
			}
			logger.Warn().Str("template", t.Name).Stringer("stage", terr.Stage).Err(terr.Err).Msg(terr.Error())
			report.Failures = append(report.Failures, terr)
			continue
		}
		report.Rendered = append(report.Rendered, Result{Template: t, Output: output, Written: !opts.DryRun})
	}

	logger.Debug().
		Int("rendered", len(report.Rendered)).
		Int("failed", len(report.Failures)).
		Msg("templates done")
	return report
}
