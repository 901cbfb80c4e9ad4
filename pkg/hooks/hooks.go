// Package hooks runs the user's hook executables after templates render.
//
// A hook is an executable file in the hook directory. It runs with the
// current environment plus the merged variables (see variables.Environ).
// Its stdout is captured and printed; a failing hook is reported and the
// remaining hooks still run.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/themeup/pkg/logging"
)

// ErrorKind classifies hook failures
type ErrorKind int

const (
	Other ErrorKind = iota
	NotFound
	PermissionDenied
	NonZeroStatus
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case NonZeroStatus:
		return "non-zero status"
	default:
		return "other"
	}
}

// Error is a failure of one hook. Code is the exit status for NonZeroStatus.
type Error struct {
	Hook string
	Kind ErrorKind
	Code int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not execute hook '%s' (%s)", e.Hook, e.cause())
}

func (e *Error) cause() string {
	switch e.Kind {
	case NotFound:
		return "hook not found"
	case PermissionDenied:
		return "permission denied"
	case NonZeroStatus:
		return fmt.Sprintf("exited with status %d", e.Code)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Hook is a named executable in the hook directory
type Hook struct {
	Name string
	Path string
}

// New creates the hook <hookDir>/<name>
func New(name, hookDir string) Hook {
	return Hook{Name: name, Path: filepath.Join(hookDir, name)}
}

// Execute runs the hook to completion and returns its stdout. env is
// appended to the current process environment.
func (h Hook) Execute(ctx context.Context, env []string) (string, error) {
	logger := logging.GetLogger("hooks")

	logger.Info().Str("hook", h.Name).Str("path", h.Path).Msg("executing hook")

	cmd := exec.CommandContext(ctx, h.Path)
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stderr.Len() > 0 {
		logger.Debug().Str("hook", h.Name).Str("output", stderr.String()).Msg("hook stderr")
	}

	if err != nil {
		herr := classify(h.Name, err)
		logger.Debug().
			Err(err).
			Str("hook", h.Name).
			Stringer("kind", herr.Kind).
			Str("stdout", stdout.String()).
			Msg("hook failed")
		return stdout.String(), herr
	}

	logger.Debug().Str("hook", h.Name).Int("stdout_bytes", stdout.Len()).Msg("hook finished")
	return stdout.String(), nil
}

func classify(name string, err error) *Error {
	herr := &Error{Hook: name, Kind: Other, Err: err}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		herr.Kind = NonZeroStatus
		herr.Code = exitErr.ExitCode()
	case errors.Is(err, fs.ErrNotExist):
		herr.Kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		herr.Kind = PermissionDenied
	}
	return herr
}

// Report is the outcome of RunAll, in configuration order
type Report struct {
	Ran      []string
	Failures []*Error
}

// RunAll runs hooks sequentially. Non-empty stdout is written to out.
// Failures are logged as warnings and collected.
func RunAll(ctx context.Context, hooks []Hook, env []string, out io.Writer) Report {
	logger := logging.GetLogger("hooks")
	var report Report

	for _, h := range hooks {
		output, err := h.Execute(ctx, env)
		if strings.TrimSpace(output) != "" {
			fmt.Fprint(out, output)
		}
		if err != nil {
			herr, ok := err.(*Error)
			if !ok {
				herr = &Error{Hook: h.Name, Kind: Other, Err: err}
			}
			logger.Warn().Str("hook", h.Name).Stringer("kind", herr.Kind).Err(herr.Err).Msg(herr.Error())
			report.Failures = append(report.Failures, herr)
			continue
		}
		report.Ran = append(report.Ran, h.Name)
	}

	return report
}
