package theme

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/arthur-debert/themeup/pkg/color"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the validator shared by theme
// validation. Field names are reported by their yaml keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
			return color.IsHex(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ColorError lists the theme fields that are missing or malformed
type ColorError struct {
	Missing []string
	Invalid []string
}

func (e *ColorError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing colors: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "malformed colors: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func validate(t *Theme) error {
	err := validatorInstance().Struct(t)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	colorErr := &ColorError{}
	for _, fe := range validationErrs {
		// Namespace is "Theme.normal.red"; drop the struct name.
		field := fe.Namespace()
		if idx := strings.IndexByte(field, '.'); idx >= 0 {
			field = field[idx+1:]
		}
		switch fe.Tag() {
		case "required":
			colorErr.Missing = append(colorErr.Missing, field)
		default:
			colorErr.Invalid = append(colorErr.Invalid, fmt.Sprintf("%s (%q)", field, fe.Value()))
		}
	}
	return colorErr
}
