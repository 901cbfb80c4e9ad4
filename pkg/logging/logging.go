// Package logging configures the zerolog logger shared by every themeup
// component.
//
// Console output goes to stderr. Every run is also appended to
// $XDG_STATE_HOME/themeup/themeup.log when that file can be opened.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appDirName  = "themeup"
	logFileName = "themeup.log"
)

// levels maps -v counts to zerolog levels; anything past the end is trace
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// Options selects where log entries go
type Options struct {
	Verbosity int
	// Console receives human readable entries. Nil means stderr.
	Console io.Writer
	// LogFile is appended with JSON entries. Empty means the default path,
	// "-" disables the file.
	LogFile string
}

// SetupLogger configures the global logger for the command line: console on
// stderr plus the default log file.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// Setup configures the global logger from opts
func Setup(opts Options) {
	setLevel(opts.Verbosity)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !colorEnabled(console),
	}}

	path := opts.LogFile
	if path == "" {
		path = logFilePath()
	}
	var fileErr error
	if path != "-" {
		var file *os.File
		if file, fileErr = openLogFile(path); fileErr == nil {
			writers = append(writers, file)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Debug().Err(fileErr).Str("path", path).Msg("log file unavailable, console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("log_file", path).Msg("logger ready")
}

// SetupWriter points the global logger at w alone, as JSON. Tests use it to
// inspect entries.
func SetupWriter(verbosity int, w io.Writer) {
	setLevel(verbosity)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

func setLevel(verbosity int) {
	level := zerolog.TraceLevel
	if verbosity >= 0 && verbosity < len(levels) {
		level = levels[verbosity]
	}
	if verbosity < 0 {
		level = levels[0]
	}
	zerolog.SetGlobalLevel(level)
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func colorEnabled(w io.Writer) bool {
	if _, off := os.LookupEnv("NO_COLOR"); off {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// logFilePath is $XDG_STATE_HOME/themeup/themeup.log, falling back to
// ~/.local/state when the variable is unset.
func logFilePath() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return logFileName
		}
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, appDirName, logFileName)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs operation at debug level and returns a func that
// logs its duration when called.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("finished")
	}
}
