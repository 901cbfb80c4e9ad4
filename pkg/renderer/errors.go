package renderer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrorKind classifies render failures
type ErrorKind int

const (
	Other ErrorKind = iota
	TemplateSyntax
	MissingVariable
	ParamTypeMismatch
	HelperNotFound
	PartialNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case TemplateSyntax:
		return "template syntax"
	case MissingVariable:
		return "missing variable"
	case ParamTypeMismatch:
		return "param type mismatch"
	case HelperNotFound:
		return "helper not found"
	case PartialNotFound:
		return "partial not found"
	default:
		return "other"
	}
}

// RenderError is the only error shape Render returns. Line and Column are
// 1-based and zero when unknown.
type RenderError struct {
	Kind ErrorKind
	// Name is the missing variable, helper or partial, when known
	Name     string
	Helper   string
	Param    string
	Expected string
	Line     int
	Column   int
	Reason   string
	Err      error
}

func (e *RenderError) Error() string {
	switch {
	case e.Line == 0:
		return e.Reason
	case e.Column == 0:
		return fmt.Sprintf("%s at line %d", e.Reason, e.Line)
	default:
		return fmt.Sprintf("%s at line %d column %d", e.Reason, e.Line, e.Column)
	}
}

func (e *RenderError) Unwrap() error { return e.Err }

var (
	// "12: function \"foo\" not defined"
	parseLocation = regexp.MustCompile(`^(\d+): (.*)$`)
	// "3:14: executing \"t\" at <variables.x>: map has no entry for key \"x\""
	execLocation = regexp.MustCompile(`^(\d+):(\d+): executing "(?:[^"\\]|\\.)*" at <(.*?)>: (.*)$`)

	missingKey       = regexp.MustCompile(`^map has no entry for key "(.*)"$`)
	missingField     = regexp.MustCompile(`^can't evaluate field (\S+) in type `)
	nilField         = regexp.MustCompile(`^nil pointer evaluating .*\.(\w+)$`)
	undefinedFunc    = regexp.MustCompile(`^function "(.*)" not defined$`)
	undefinedPartial = regexp.MustCompile(`^template "(.*)" not defined$`)
	noAssociated     = regexp.MustCompile(`^no template "(.*)" associated with`)
	contextPath      = regexp.MustCompile(`^\.?[\w-]+(\.[\w-]+)*$`)
	sourceChain      = regexp.MustCompile(`^\.?[A-Za-z_][\w-]*(\.[\w-]+)*`)
)

// translate maps an error from text/template into a RenderError. It is the
// single place that knows the engine's message formats. text is the template
// source, used to recover full variable paths.
func translate(name, text string, err error) *RenderError {
	rerr := &RenderError{Kind: Other, Err: err}
	msg := strings.TrimPrefix(err.Error(), "template: "+name+":")
	context := ""

	if m := execLocation.FindStringSubmatch(msg); m != nil {
		rerr.Line, _ = strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		rerr.Column = col + 1
		context = m[3]
		msg = m[4]
	} else if m := parseLocation.FindStringSubmatch(msg); m != nil {
		rerr.Line, _ = strconv.Atoi(m[1])
		msg = m[2]
		rerr.Kind = TemplateSyntax
	} else {
		msg = strings.TrimPrefix(strings.TrimPrefix(err.Error(), "template: "), name+": ")
	}

	var paramErr *ParamTypeError
	if errors.As(err, &paramErr) {
		rerr.Kind = ParamTypeMismatch
		rerr.Name = paramErr.Helper
		rerr.Helper = paramErr.Helper
		rerr.Param = paramErr.Param
		rerr.Expected = paramErr.Expected
		rerr.Reason = paramErr.Error()
		return rerr
	}

	switch {
	case matches(missingKey, msg, &rerr.Name), matches(missingField, msg, &rerr.Name), matches(nilField, msg, &rerr.Name):
		rerr.Kind = MissingVariable
		if path := missingPath(chainAt(text, rerr.Line, rerr.Column), rerr.Name); path != "" {
			rerr.Name = path
		} else if contextPath.MatchString(context) && strings.HasSuffix("."+strings.TrimPrefix(context, "."), "."+rerr.Name) {
			rerr.Name = strings.TrimPrefix(context, ".")
		}
		rerr.Reason = fmt.Sprintf("missing variable '%s'", rerr.Name)
	case matches(undefinedFunc, msg, &rerr.Name):
		rerr.Kind = HelperNotFound
		rerr.Helper = rerr.Name
		rerr.Reason = fmt.Sprintf("undefined helper '%s'", rerr.Name)
	case matches(undefinedPartial, msg, &rerr.Name), matches(noAssociated, msg, &rerr.Name):
		rerr.Kind = PartialNotFound
		rerr.Reason = fmt.Sprintf("partial '%s' not found", rerr.Name)
	default:
		rerr.Reason = msg
	}
	return rerr
}

func matches(re *regexp.Regexp, msg string, capture *string) bool {
	m := re.FindStringSubmatch(msg)
	if m == nil {
		return false
	}
	*capture = m[1]
	return true
}

// chainAt returns the dotted identifier chain starting at the 1-based line
// and column of text, or "" when there is none.
func chainAt(text string, line, column int) string {
	if line < 1 || column < 1 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if line > len(lines) || column > len(lines[line-1]) {
		return ""
	}
	return sourceChain.FindString(lines[line-1][column-1:])
}

// missingPath cuts chain after the first segment named key, so that
// "variables.font.family" with key "font" gives "variables.font".
func missingPath(chain, key string) string {
	parts := strings.Split(strings.TrimPrefix(chain, "."), ".")
	for i := 1; i < len(parts); i++ {
		if parts[i] == key {
			return strings.Join(parts[:i+1], ".")
		}
	}
	return ""
}
