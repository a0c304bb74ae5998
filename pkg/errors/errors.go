// Package errors provides coded errors for cfgsplit so that callers and tests
// can match on a stable code instead of a message.
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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Split errors
	ErrSplitNotFound ErrorCode = "SPLIT_NOT_FOUND"
	ErrSplitInvalid  ErrorCode = "SPLIT_INVALID"

	// Output errors
	ErrRender     ErrorCode = "RENDER"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileExists ErrorCode = "FILE_EXISTS"
)

// CfgsplitError represents a structured error with code and details
type CfgsplitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CfgsplitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CfgsplitError) Unwrap() error {
	return e.Wrapped
}

// Is matches any CfgsplitError carrying the same code.
func (e *CfgsplitError) Is(target error) bool {
	var targetErr *CfgsplitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CfgsplitError with the given code and message
func New(code ErrorCode, message string) *CfgsplitError {
	return &CfgsplitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CfgsplitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CfgsplitError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CfgsplitError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CfgsplitError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CfgsplitError) WithDetail(key string, value interface{}) *CfgsplitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cerr *CfgsplitError
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CfgsplitError
func GetErrorCode(err error) ErrorCode {
	var cerr *CfgsplitError
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CfgsplitError
func GetErrorDetails(err error) map[string]interface{} {
	var cerr *CfgsplitError
	if errors.As(err, &cerr) {
		return cerr.Details
	}
	return nil
}
