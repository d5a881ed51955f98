// Package errors provides typed domain errors for power-cost.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeUnknownMeter indicates a reading or tariff record referencing a
	// meter number absent from the identity table
	TypeUnknownMeter Type = "UNKNOWN_METER"

	// TypeDuplicateMeter indicates a meter number claimed by more than one account
	TypeDuplicateMeter Type = "DUPLICATE_METER"

	// TypeInsufficientData indicates fewer than two readings for an account
	TypeInsufficientData Type = "INSUFFICIENT_DATA"

	// TypeTariff indicates a day without a covering tariff interval
	TypeTariff Type = "TARIFF_ERROR"

	// TypeCalendar indicates invalid calendar arithmetic input
	TypeCalendar Type = "CALENDAR_ERROR"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a data file parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

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

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
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

// UnknownMeter creates an unknown meter error
func UnknownMeter(meter string) *Error {
	return Newf(TypeUnknownMeter, "meter number not in identity table: %s", meter)
}

// DuplicateMeter creates a duplicate meter assignment error
func DuplicateMeter(meter, first, second string) *Error {
	return Newf(TypeDuplicateMeter, "meter %s claimed by accounts %q and %q", meter, first, second)
}

// InsufficientData creates an insufficient data error
func InsufficientData(account string, readings int) *Error {
	return Newf(TypeInsufficientData, "account %q has %d readings, need at least 2", account, readings)
}

// Tariff creates a tariff resolution error
func Tariff(message string) *Error {
	return New(TypeTariff, message)
}

// Calendar creates a calendar arithmetic error
func Calendar(message string) *Error {
	return New(TypeCalendar, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
