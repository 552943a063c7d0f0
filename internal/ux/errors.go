package ux

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// Session errors
	if strings.Contains(errMsg, "token expired") || strings.Contains(errMsg, "jwt expired") {
		return NewErrorWithSuggestion(err,
			"Your session has expired. Run 'adminctl auth login' to start a new one")
	}
	if strings.Contains(errMsg, "not logged in") {
		return NewErrorWithSuggestion(err,
			"Authenticate first with 'adminctl auth login'")
	}
	if strings.Contains(errMsg, "invalid email or password") || strings.Contains(errMsg, "Invalid credentials") {
		return NewErrorWithSuggestion(err,
			"Check the email and password and try again. Super admin credentials are case sensitive")
	}

	// Network errors
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no route to host") {
		return NewErrorWithSuggestion(err,
			"Check your network connection and that ADMINCTL_API_URL points at a reachable platform instance")
	}
	if strings.Contains(errMsg, "context deadline exceeded") {
		return NewErrorWithSuggestion(err,
			"The platform did not answer in time. Retry, or raise the timeout with ADMINCTL_HTTP_TIMEOUT")
	}

	// Pincode lookup
	if strings.Contains(errMsg, "pincode") {
		return NewErrorWithSuggestion(err,
			"Indian postal pincodes are exactly 6 digits, e.g. 411001")
	}

	// Storage errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check the permissions on the credential directory (default ~/.adminctl)")
	}

	// Config errors
	if strings.Contains(errMsg, "config") && strings.Contains(errMsg, "load") {
		return NewErrorWithSuggestion(err,
			"Check the config file syntax, or unset ADMINCTL_CONFIG to fall back to defaults")
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
