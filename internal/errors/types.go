package errors

import (
	"fmt"
)

// ErrorType classifies an AppError. Each type has one stable code, which
// is what the web and CLI layers log.
type ErrorType int

const (
	ErrorTypeNotFound ErrorType = iota
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
)

var errorTypes = map[ErrorType]struct{ name, code string }{
	ErrorTypeNotFound:     {"not_found", "NOT_FOUND"},
	ErrorTypeDatabase:     {"database", "DATABASE_ERROR"},
	ErrorTypeInvalidInput: {"invalid_input", "INVALID_INPUT"},
	ErrorTypeTimeout:      {"timeout", "TIMEOUT"},
}

func (et ErrorType) String() string {
	if t, ok := errorTypes[et]; ok {
		return t.name
	}
	return "unknown"
}

// Code returns the upper-case code reported for this type.
func (et ErrorType) Code() string {
	if t, ok := errorTypes[et]; ok {
		return t.code
	}
	return "UNKNOWN_ERROR"
}

// AppError is a classified failure from the store or the request layer.
// Context carries the identifiers it was raised for and is logged with it.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Code returns the code of the error's type.
func (e *AppError) Code() string {
	return e.Type.Code()
}

// Is matches any AppError of the same type, so errors.Is(err,
// &AppError{Type: ErrorTypeNotFound}) works as a sentinel check.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type
	}
	return false
}
