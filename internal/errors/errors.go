// Package errors provides structured error types for tink.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for tink operations.
const (
	// Input errors
	CodeInputNoProgram     = "INPUT_001" // Empty program list
	CodeInputInvalidTarget = "INPUT_002" // Unknown editor target

	// Entry errors
	CodeEntryDuplicate = "ENTRY_001" // Label/name already present
	CodeEntryNotFound  = "ENTRY_002" // Label/name not present

	// Config errors
	CodeConfigMissingField = "CONFIG_001" // Missing required field
	CodeConfigInvalidValue = "CONFIG_002" // Invalid value
	CodeConfigExists       = "CONFIG_003" // Config file already present

	// Parse errors
	CodeParseError = "PARSE_001" // File content could not be decoded

	// IO errors
	CodeIOReadError  = "IO_004" // Read error
	CodeIOWriteError = "IO_005" // Write error
)

// TinkError is the structured error type for tink operations.
type TinkError struct {
	Code    string         `json:"code"`              // Error code (e.g., "ENTRY_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (path, label, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *TinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *TinkError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *TinkError) WithDetail(key string, value any) *TinkError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *TinkError) WithCause(err error) *TinkError {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *TinkError) MarshalJSON() ([]byte, error) {
	type alias TinkError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new TinkError.
func New(code, message string) *TinkError {
	return &TinkError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new TinkError with formatted message.
func Newf(code, format string, args ...any) *TinkError {
	return &TinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a TinkError.
func Wrap(code, message string, err error) *TinkError {
	return &TinkError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted TinkError.
func Wrapf(code string, err error, format string, args ...any) *TinkError {
	return &TinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Input Errors ---

// NoProgram reports an invocation without a program to debug.
func NoProgram() *TinkError {
	return New(CodeInputNoProgram, "no program specified")
}

// InvalidTarget reports an unknown editor target.
func InvalidTarget(target string, valid []string) *TinkError {
	return Newf(CodeInputInvalidTarget, "invalid target %q (valid: %v)", target, valid).
		WithDetail("target", target)
}

// --- Entry Errors ---

// EntryDuplicate creates an error for an add that would repeat an existing key.
func EntryDuplicate(field, key string) *TinkError {
	return Newf(CodeEntryDuplicate, "profile with %s '%s' already exists", field, key).
		WithDetail("field", field).
		WithDetail("key", key)
}

// EntryNotFound creates an error for a missing key.
func EntryNotFound(field, key string) *TinkError {
	return Newf(CodeEntryNotFound, "no profile with %s '%s'", field, key).
		WithDetail("field", field).
		WithDetail("key", key)
}

// --- Config Errors ---

// ConfigMissingField creates an error for missing config field.
func ConfigMissingField(field string) *TinkError {
	return Newf(CodeConfigMissingField, "missing required config field: %s", field).
		WithDetail("field", field)
}

// ConfigInvalidValue creates an error for invalid config value.
func ConfigInvalidValue(field string, value any, reason string) *TinkError {
	return Newf(CodeConfigInvalidValue, "invalid config value for %s: %s", field, reason).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("reason", reason)
}

// ConfigExists reports an init over an existing config file.
func ConfigExists(path string) *TinkError {
	return Newf(CodeConfigExists, "tink project already initialized (found %s)", path).
		WithDetail("path", path)
}

// --- Parse Errors ---

// ParseError creates an error for a file whose content cannot be decoded.
func ParseError(path string, err error) *TinkError {
	return Wrapf(CodeParseError, err, "failed to parse %s", path).
		WithDetail("path", path)
}

// --- IO Errors ---

// IOReadError creates an error for read failures.
func IOReadError(path string, err error) *TinkError {
	return Wrap(CodeIOReadError, "failed to read file", err).
		WithDetail("path", path)
}

// IOWriteError creates an error for write failures.
func IOWriteError(path string, err error) *TinkError {
	return Wrap(CodeIOWriteError, "failed to write file", err).
		WithDetail("path", path)
}

// HasCode checks if an error is a TinkError with the given code.
// It handles wrapped errors by unwrapping to find a TinkError.
func HasCode(err error, code string) bool {
	var terr *TinkError
	if errors.As(err, &terr) {
		return terr.Code == code
	}
	return false
}

// Code returns the error code if err is a TinkError, empty string otherwise.
func Code(err error) string {
	var terr *TinkError
	if errors.As(err, &terr) {
		return terr.Code
	}
	return ""
}
