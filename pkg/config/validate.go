package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// FieldError lists the config fields that failed validation
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return strings.Join(e.Fields, "; ")
}

func validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErr := &FieldError{}
	for _, fe := range validationErrs {
		// Namespace is "Config.templates[0].source"; drop the struct name.
		field := fe.Namespace()
		if idx := strings.IndexByte(field, '.'); idx >= 0 {
			field = field[idx+1:]
		}
		fieldErr.Fields = append(fieldErr.Fields, fmt.Sprintf("%s is %s", field, fe.Tag()))
	}
	return fieldErr
}
