package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Theme errors
	ErrThemeNotSpecified ErrorCode = "THEME_NOT_SPECIFIED"
	ErrThemeNotFound     ErrorCode = "THEME_NOT_FOUND"
	ErrThemeRead         ErrorCode = "THEME_READ"
	ErrThemeParse        ErrorCode = "THEME_PARSE"
	ErrThemeInvalid      ErrorCode = "THEME_INVALID"
	ErrThemeList         ErrorCode = "THEME_LIST"

	// Variable errors
	ErrInvalidVariable ErrorCode = "INVALID_VARIABLE"
)

// ThemeupError represents a structured error with code and details
type ThemeupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. The wrapped cause is shown in
// parentheses so messages read "could not load theme 'x' (file not found)".
func (e *ThemeupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *ThemeupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ThemeupError) Is(target error) bool {
	var targetErr *ThemeupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ThemeupError with the given code and message
func New(code ErrorCode, message string) *ThemeupError {
	return &ThemeupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ThemeupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ThemeupError {
	return &ThemeupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ThemeupError
func Wrap(err error, code ErrorCode, message string) *ThemeupError {
	if err == nil {
		return nil
	}
	return &ThemeupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ThemeupError {
	if err == nil {
		return nil
	}
	return &ThemeupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ThemeupError) WithDetail(key string, value interface{}) *ThemeupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var themeupErr *ThemeupError
	if errors.As(err, &themeupErr) {
		return themeupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ThemeupError
func GetErrorCode(err error) ErrorCode {
	var themeupErr *ThemeupError
	if errors.As(err, &themeupErr) {
		return themeupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ThemeupError
func GetErrorDetails(err error) map[string]interface{} {
	var themeupErr *ThemeupError
	if errors.As(err, &themeupErr) {
		return themeupErr.Details
	}
	return nil
}

// As is errors.As from the standard library, re-exported so callers that
// import this package under the name "errors" keep access to it.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
