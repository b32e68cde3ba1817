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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors: invalid or contradictory options, mandatory
	// variable files that are absent, output roots that collide with
	// existing non-directory files.
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// Variable resolution errors
	ErrVarMissing   ErrorCode = "VAR_MISSING"
	ErrVarCycle     ErrorCode = "VAR_CYCLE"
	ErrVarFileParse ErrorCode = "VARFILE_PARSE"

	// FileSystem and source errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrSourceFetch  ErrorCode = "SOURCE_FETCH"
)

// TsubstError represents a structured error with code and details
type TsubstError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TsubstError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TsubstError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TsubstError) Is(target error) bool {
	var targetErr *TsubstError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TsubstError with the given code and message
func New(code ErrorCode, message string) *TsubstError {
	return &TsubstError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TsubstError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TsubstError {
	return &TsubstError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TsubstError
func Wrap(err error, code ErrorCode, message string) *TsubstError {
	if err == nil {
		return nil
	}
	return &TsubstError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TsubstError {
	if err == nil {
		return nil
	}
	return &TsubstError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TsubstError) WithDetail(key string, value interface{}) *TsubstError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var terr *TsubstError
	if errors.As(err, &terr) {
		return terr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TsubstError
func GetErrorCode(err error) ErrorCode {
	var terr *TsubstError
	if errors.As(err, &terr) {
		return terr.Code
	}
	return ErrUnknown
}
