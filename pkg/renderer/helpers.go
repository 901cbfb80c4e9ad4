package renderer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/arthur-debert/themeup/pkg/color"
	"github.com/arthur-debert/themeup/pkg/value"
)

// Expected parameter types reported by ParamTypeError
const (
	expectNumber = "number"
	expectByte   = "integer 0-255"
	expectColor  = "#RRGGBB color"
)

// ParamTypeError is returned by a helper called with an argument it cannot use
type ParamTypeError struct {
	Helper   string
	Param    string
	Expected string
	Value    any
	Err      error
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("helper '%s' expected '%s' value for param '%s'", e.Helper, e.Expected, e.Param)
}

func (e *ParamTypeError) Unwrap() error { return e.Err }

// helperFuncs returns the computation helpers available to every template
func helperFuncs() template.FuncMap {
	return template.FuncMap{
		"hex":      hexHelper,
		"div":      divHelper,
		"mul":      mulHelper,
		"int":      intHelper,
		"lighten":  colorHelper("lighten", "amount", color.Color.Lighten),
		"darken":   colorHelper("darken", "amount", color.Color.Darken),
		"saturate": colorHelper("saturate", "amount", color.Color.Saturate),
		"shiftHue": colorHelper("shiftHue", "degrees", color.Color.ShiftHue),
		"rgba":     rgbaHelper,
	}
}

// hex formats an 8-bit integer as lower case hex without padding
func hexHelper(number any) (string, error) {
	f, ok := toFloat(number)
	if !ok || f != math.Trunc(f) || f < 0 || f > 255 {
		return "", &ParamTypeError{Helper: "hex", Param: "number", Expected: expectByte, Value: number}
	}
	return strconv.FormatUint(uint64(f), 16), nil
}

// div is floating point division; dividing by zero yields Inf or NaN
func divHelper(dividend, divisor any) (value.Decimal, error) {
	a, err := numberParam("div", "dividend", dividend)
	if err != nil {
		return 0, err
	}
	b, err := numberParam("div", "divisor", divisor)
	if err != nil {
		return 0, err
	}
	return value.Decimal(a / b), nil
}

func mulHelper(multiplicand, multiplier any) (value.Decimal, error) {
	a, err := numberParam("mul", "multiplicand", multiplicand)
	if err != nil {
		return 0, err
	}
	b, err := numberParam("mul", "multiplier", multiplier)
	if err != nil {
		return 0, err
	}
	return value.Decimal(a * b), nil
}

// int truncates toward zero into an unsigned integer. Negative values and
// NaN become 0; values past the range saturate.
func intHelper(number any) (uint64, error) {
	f, err := numberParam("int", "number", number)
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0, nil
	case f >= math.MaxUint64:
		return math.MaxUint64, nil
	}
	return uint64(f), nil
}

func colorHelper(name, param string, transform func(color.Color, float64) color.Color) func(any, any) (string, error) {
	return func(hex, amount any) (string, error) {
		c, err := colorParam(name, hex)
		if err != nil {
			return "", err
		}
		f, err := numberParam(name, param, amount)
		if err != nil {
			return "", err
		}
		return transform(c, f).Hex(), nil
	}
}

func rgbaHelper(hex, alpha any) (string, error) {
	c, err := colorParam("rgba", hex)
	if err != nil {
		return "", err
	}
	a, err := numberParam("rgba", "alpha", alpha)
	if err != nil {
		return "", err
	}
	return c.RGBA(a), nil
}

func numberParam(helper, param string, v any) (float64, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, &ParamTypeError{Helper: helper, Param: param, Expected: expectNumber, Value: v}
	}
	return f, nil
}

func colorParam(helper string, v any) (color.Color, error) {
	s, ok := v.(string)
	if !ok {
		return color.Color{}, &ParamTypeError{Helper: helper, Param: "color", Expected: expectColor, Value: v}
	}
	c, err := color.FromHex(s)
	if err != nil {
		return color.Color{}, &ParamTypeError{Helper: helper, Param: "color", Expected: expectColor, Value: v, Err: err}
	}
	return c, nil
}

// toFloat accepts Go numbers, value.Number, value.Decimal and numeric strings
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case value.Number:
		return n.Float64(), true
	case value.Decimal:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
