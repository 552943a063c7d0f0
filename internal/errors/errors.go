package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeTokenExpired       ErrorCode = "AUTH-001"
	ErrCodeInvalidCredentials ErrorCode = "AUTH-002"
	ErrCodeRestoreFailed      ErrorCode = "AUTH-003"
	ErrCodeNotLoggedIn        ErrorCode = "AUTH-004"
	ErrCodeLogoutDegraded     ErrorCode = "AUTH-005"

	// Platform API errors (API-001 to API-099)
	ErrCodeAPIUnavailable ErrorCode = "API-001"

	// PIN-code lookup errors (PIN-001 to PIN-099)
	ErrCodePincodeInvalid ErrorCode = "PIN-001"
	ErrCodePincodeLookup  ErrorCode = "PIN-002"

	// Credential storage errors (STORE-001 to STORE-099)
	ErrCodeStoreRead  ErrorCode = "STORE-001"
	ErrCodeStoreWrite ErrorCode = "STORE-002"
	ErrCodeStoreClear ErrorCode = "STORE-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigLoad    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound ErrorCode = "IO-001"
)

// ConsoleError represents an enhanced error with code and suggestions
type ConsoleError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *ConsoleError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ConsoleError) Unwrap() error {
	return e.Cause
}

// New creates a new ConsoleError
func New(code ErrorCode, message string) *ConsoleError {
	return &ConsoleError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ConsoleError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ConsoleError {
	return &ConsoleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ConsoleError) WithSuggestion(suggestion string) *ConsoleError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ConsoleError) WithSuggestions(suggestions ...string) *ConsoleError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewTokenExpiredError creates a session-expired error
func NewTokenExpiredError() *ConsoleError {
	return New(ErrCodeTokenExpired, "session expired").
		WithSuggestion("Run 'adminctl auth login' to start a new session")
}

// NewInvalidCredentialsError creates a login-rejected error carrying the server's message
func NewInvalidCredentialsError(serverMessage string) *ConsoleError {
	if serverMessage == "" {
		serverMessage = "login failed"
	}
	return New(ErrCodeInvalidCredentials, serverMessage).
		WithSuggestions(
			"Check the email address and password",
			"Retry with 'adminctl auth login'")
}

// NewNotLoggedInError creates an error for commands that need an authenticated session
func NewNotLoggedInError() *ConsoleError {
	return New(ErrCodeNotLoggedIn, "not logged in").
		WithSuggestion("Run 'adminctl auth login' to authenticate")
}

// NewRestoreFailedError creates a session-restore error
func NewRestoreFailedError(cause error) *ConsoleError {
	return Wrap(ErrCodeRestoreFailed, "could not restore the saved session", cause).
		WithSuggestion("Run 'adminctl auth login' to start a new session")
}

// NewAPIUnavailableError creates an error for network-level API failures
func NewAPIUnavailableError(cause error) *ConsoleError {
	return Wrap(ErrCodeAPIUnavailable, "platform API is unreachable", cause).
		WithSuggestions(
			"Check your network connection",
			"Verify the API base URL in the configuration")
}

// NewPincodeInvalidError creates an error for malformed PIN codes
func NewPincodeInvalidError(pincode string) *ConsoleError {
	return New(ErrCodePincodeInvalid, fmt.Sprintf("invalid PIN code: %q", pincode)).
		WithSuggestion("Provide a 6-digit Indian postal PIN code")
}

// NewConfigLoadError creates a configuration load error
func NewConfigLoadError(path string, cause error) *ConsoleError {
	return Wrap(ErrCodeConfigLoad, fmt.Sprintf("failed to load configuration: %s", path), cause).
		WithSuggestion("Check the file syntax (YAML)").
		WithSuggestion("Unset ADMINCTL_CONFIG to fall back to defaults")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *ConsoleError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// IsCode reports whether err (or any wrapped error) is a ConsoleError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ce *ConsoleError
	if stderrors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
