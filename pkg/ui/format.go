package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command output is printed
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output stream
	FormatAuto Format = iota
	// FormatTerminal uses colors, bold headers and palette swatches
	FormatTerminal
	// FormatText is plain text, one item per line
	FormatText
	// FormatJSON is a single JSON document
	FormatJSON
)

// Formats lists the accepted --format values
var Formats = []string{"auto", "term", "text", "json"}

func (f Format) String() string {
	if f >= FormatAuto && int(f) < len(Formats) {
		return Formats[f]
	}
	return "unknown"
}

// ParseFormat parses a --format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format %q (expected one of %s)", s, strings.Join(Formats, ", "))
	}
}

type fdWriter interface {
	Fd() uintptr
}

// Resolve turns FormatAuto into a concrete format for w. Writers that are
// not terminals get FormatText, as does NO_COLOR or an ASCII-only terminal.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	file, ok := w.(fdWriter)
	if !ok || (!isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd())) {
		return FormatText
	}

	if termenv.NewOutput(w).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
