// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Configuration errors (100-199): Missing API key, invalid config file, version mismatch
//   - Validation errors (200-299): Invalid flags, date ranges, unknown commands or sources
//   - Symbol errors (300-399): Unresolved or unknown tickers and currency pairs
//   - Market data errors (400-499): Fetching, parsing and tabulating provider responses
//   - Chart errors (500-599): Rendering preconditions and output failures
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeMissingAPIKey, "ALPHA_VANTAGE_API_KEY is not set")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeSymbolNotFound, "symbol %s not found", symbol)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "request failed", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeInvalidDateRange) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode returns e.Code.
func (e *Error) ErrorCode() ErrorCode {
	return e.Code
}

// coder is implemented by every error type of this package.
type coder interface {
	ErrorCode() ErrorCode
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode of the outermost error of this package in
// err's chain. Returns ErrCodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var c coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsFatal reports whether err is a configuration error. The command loop prints
// such errors like any other, but the operation that raised them cannot be retried
// until the environment is fixed.
func IsFatal(err error) bool {
	return GetCode(err).IsConfiguration()
}

// SymbolNotFoundError is returned when a requested symbol cannot be resolved.
// Candidates holds the closest matches offered by the provider, best first.
type SymbolNotFoundError struct {
	Symbol     string
	Candidates []string
}

// NewSymbolNotFoundError creates a new SymbolNotFoundError.
func NewSymbolNotFoundError(symbol string, candidates []string) *SymbolNotFoundError {
	return &SymbolNotFoundError{
		Symbol:     symbol,
		Candidates: candidates,
	}
}

// Error implements the error interface.
func (e *SymbolNotFoundError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("[%d] %s not found", ErrCodeSymbolNotFound, e.Symbol)
	}

	return fmt.Sprintf("[%d] %s not found. Close matches are: %v", ErrCodeSymbolNotFound, e.Symbol, e.Candidates)
}

// ErrorCode always returns ErrCodeSymbolNotFound.
func (e *SymbolNotFoundError) ErrorCode() ErrorCode {
	return ErrCodeSymbolNotFound
}

// IsSymbolNotFoundError checks if an error is a SymbolNotFoundError.
// It uses errors.As to check the error chain.
func IsSymbolNotFoundError(err error) bool {
	var notFound *SymbolNotFoundError

	return errors.As(err, &notFound)
}
