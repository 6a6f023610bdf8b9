// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidParameter indicates a missing or out-of-domain service parameter
	TypeInvalidParameter Type = "INVALID_PARAMETER"

	// TypeDegenerateResult indicates a computation whose divisors collapsed to
	// their floor epsilon; the numbers exist but are not physically meaningful
	TypeDegenerateResult Type = "DEGENERATE_RESULT"

	// TypeScenario indicates a scenario file parsing error
	TypeScenario Type = "SCENARIO_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeOutput indicates a rendering/export error
	TypeOutput Type = "OUTPUT_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidParameter creates an invalid-parameter error naming the offending field
func InvalidParameter(field, reason string) *Error {
	return Newf(TypeInvalidParameter, "parameter %q: %s", field, reason).
		WithContext("field", field)
}

// Field returns the offending field name of an invalid-parameter error,
// or "" when the error carries none.
func Field(err error) string {
	e, ok := err.(*Error)
	if !ok || e.Context == nil {
		return ""
	}
	if f, ok := e.Context["field"].(string); ok {
		return f
	}
	return ""
}

// Scenario creates a scenario parsing error
func Scenario(message string, cause error) *Error {
	return Wrap(TypeScenario, message, cause)
}

// Output creates a rendering error
func Output(message string, cause error) *Error {
	return Wrap(TypeOutput, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
