package platform

import (
	"errors"
	"fmt"
)

// TokenExpiredError marks a request that failed because the session token
// is no longer valid: either the server answered 401 or a local pre-flight
// check found the token past its expiry. It is the one error the session
// layer treats as "force re-login".
type TokenExpiredError struct {
	Message string
}

func (e *TokenExpiredError) Error() string {
	if e.Message == "" {
		return "token expired"
	}
	return e.Message
}

// IsTokenExpired returns true if err (or any wrapped error) is a TokenExpiredError.
func IsTokenExpired(err error) bool {
	var expErr *TokenExpiredError
	return errors.As(err, &expErr)
}

// HTTPError represents a non-2xx HTTP response from the API that is not a
// token-expiration failure.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsHTTPError returns true if err (or any wrapped error) is an HTTPError.
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// ErrorMessage extracts a user-presentable message from an API error,
// falling back to the error's own text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var expErr *TokenExpiredError
	if errors.As(err, &expErr) && expErr.Message != "" {
		return expErr.Message
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return err.Error()
}
