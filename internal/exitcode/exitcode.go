package exitcode

import (
	"os"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/platform"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a login or credential failure
	AuthError = 3

	// SessionExpired indicates the saved session lapsed and a re-login is required
	SessionExpired = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// APIError indicates the platform API rejected the request
	APIError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case platform.IsTokenExpired(err), errors.IsCode(err, errors.ErrCodeTokenExpired):
		return SessionExpired
	case errors.IsCode(err, errors.ErrCodeInvalidCredentials),
		errors.IsCode(err, errors.ErrCodeNotLoggedIn),
		errors.IsCode(err, errors.ErrCodeRestoreFailed):
		return AuthError
	case errors.IsCode(err, errors.ErrCodeAPIUnavailable):
		return NetworkError
	case platform.IsHTTPError(err):
		return APIError
	case errors.IsCode(err, errors.ErrCodeConfigLoad),
		errors.IsCode(err, errors.ErrCodeConfigInvalid),
		errors.IsCode(err, errors.ErrCodePincodeInvalid),
		errors.IsCode(err, errors.ErrCodeFileNotFound):
		return UsageError
	default:
		return GeneralError
	}
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case SessionExpired:
		return "Session expired"
	case NetworkError:
		return "Network error"
	case APIError:
		return "Platform API error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
