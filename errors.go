package helpgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable failure class of a run.
type ErrorCode string

const (
	CodeTransport        ErrorCode = "transport"
	CodeInvalidConfig    ErrorCode = "invalid_config"
	CodeInvalidCatalog   ErrorCode = "invalid_catalog"
	CodeStrictValidation ErrorCode = "strict_validation"
	CodeOutput           ErrorCode = "output"
	CodeInternal         ErrorCode = "internal"
)

// Error is a classified failure of a generation run.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError creates an Error without a cause.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates an Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// wrap attaches code and message to err.
func wrap(code ErrorCode, err error, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// ExitCode maps a code to a process exit status.
func (c ErrorCode) ExitCode() int {
	switch c {
	case CodeInvalidConfig:
		return 2
	case CodeTransport:
		return 3
	case CodeInvalidCatalog:
		return 4
	case CodeStrictValidation:
		return 5
	case CodeOutput:
		return 6
	default:
		return 1
	}
}

// ValidationError converts validator failures into a CodeInvalidConfig
// error listing each failing field. Other errors are wrapped unchanged.
func ValidationError(err error) *Error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return wrap(CodeInvalidConfig, err, "invalid configuration")
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Field()+": "+formatValidationError(ve))
	}
	return NewError(CodeInvalidConfig, strings.Join(messages, "; "))
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "required_with":
		return fmt.Sprintf("required when %s is set", ve.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "url", "http_url":
		return "must be a valid URL"
	case "hostname_port":
		return "must be host:port"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
