package core

import (
	"context"
	"io"

	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/hooks"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/renderer"
	"github.com/arthur-debert/themeup/pkg/templates"
	"github.com/arthur-debert/themeup/pkg/theme"
	"github.com/arthur-debert/themeup/pkg/variables"
)

// Options are the inputs of one run
type Options struct {
	Dirs paths.Directories
	// Theme overrides THEMEUP_THEME and the config file when set
	Theme string
	// Hooks replaces the configured hooks when HooksSet is true
	Hooks    []string
	HooksSet bool
	// Variables are raw key=value pairs from the command line
	Variables  []string
	DryRun     bool
	CreateDirs bool
	// HookOutput receives the stdout of hooks
	HookOutput io.Writer
}

// Result is the outcome of a run that got past the fatal stages
type Result struct {
	Config    *config.Config
	Theme     *theme.Theme
	Context   variables.Context
	Templates templates.Report
	Hooks     hooks.Report
}

// Failures returns the per-template and per-hook errors in the order they
// happened
func (r *Result) Failures() []error {
	var errs []error
	for _, f := range r.Templates.Failures {
		errs = append(errs, f)
	}
	for _, f := range r.Hooks.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Warnings is the number of per-item failures
func (r *Result) Warnings() int {
	return len(r.Templates.Failures) + len(r.Hooks.Failures)
}

// Run executes all stages
func Run(ctx context.Context, fsys filesystem.FS, opts Options) (*Result, error) {
	logger := logging.GetLogger("core")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	// LoadConfig
	cfg, err := config.LoadWithOverrides(fsys, opts.Dirs.ConfigFile, overrides(opts))
	if err != nil {
		return nil, err
	}

	// LoadTheme
	if cfg.Theme == "" {
		return nil, errors.Newf(errors.ErrThemeNotSpecified,
			"no theme specified (use --theme, %s or 'theme' in %s)", config.EnvTheme, paths.ConfigFileName)
	}
	th, err := theme.Load(fsys, opts.Dirs.ThemeDir, cfg.Theme)
	if err != nil {
		return nil, err
	}

	// MergeVariables
	assignments, err := variables.ParseAssignments(opts.Variables)
	if err != nil {
		return nil, err
	}
	vars := variables.Merge(th, cfg.Variables, assignments)

	result := &Result{Config: cfg, Theme: th, Context: vars}

	// RenderTemplates
	tmpls := make([]templates.Template, 0, len(cfg.Templates))
	for _, entry := range cfg.Templates {
		tmpls = append(tmpls, templates.New(entry.Source, entry.Target, opts.Dirs.TemplateDir))
	}
	result.Templates = templates.RenderAll(fsys, renderer.New(vars), tmpls, templates.Options{
		CreateDirs: opts.CreateDirs,
		DryRun:     opts.DryRun,
	})

	// RunHooks
	if opts.DryRun {
		if len(cfg.Hooks) > 0 {
			logger.Info().Strs("hooks", cfg.Hooks).Msg("dry run, not running hooks")
		}
	} else {
		hks := make([]hooks.Hook, 0, len(cfg.Hooks))
		for _, name := range cfg.Hooks {
			hks = append(hks, hooks.New(name, opts.Dirs.HookDir))
		}
		out := opts.HookOutput
		if out == nil {
			out = io.Discard
		}
		result.Hooks = hooks.RunAll(ctx, hks, vars.Environ(), out)
	}

	logger.Info().
		Str("theme", th.Name).
		Int("rendered", len(result.Templates.Rendered)).
		Int("hooks", len(result.Hooks.Ran)).
		Int("warnings", result.Warnings()).
		Msg("run finished")
	return result, nil
}

func overrides(opts Options) map[string]interface{} {
	o := map[string]interface{}{}
	if opts.Theme != "" {
		o[config.KeyTheme] = opts.Theme
	}
	if opts.HooksSet {
		names := opts.Hooks
		if names == nil {
			names = []string{}
		}
		o[config.KeyHooks] = names
	}
	return o
}

// ListThemes returns the sorted theme names in the theme directory
func ListThemes(fsys filesystem.FS, dirs paths.Directories) ([]string, error) {
	return theme.List(fsys, dirs.ThemeDir)
}
