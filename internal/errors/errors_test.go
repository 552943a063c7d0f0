package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeTokenExpired, "test error message")

	if err.Code != ErrCodeTokenExpired {
		t.Errorf("expected code %s, got %s", ErrCodeTokenExpired, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeStoreRead, "failed to read credentials", cause)

	if err.Code != ErrCodeStoreRead {
		t.Errorf("expected code %s, got %s", ErrCodeStoreRead, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConsoleError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeInvalidCredentials, "Invalid credentials"),
			wantCode: "AUTH-002",
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeAPIUnavailable, "request failed", fmt.Errorf("connection refused")),
			wantCode: "API-001",
			wantMsg:  "connection refused",
		},
		{
			name:     "error with suggestion",
			err:      NewTokenExpiredError(),
			wantCode: "AUTH-001",
			wantMsg:  "adminctl auth login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := NewInvalidCredentialsError("Invalid credentials")

	if !IsCode(err, ErrCodeInvalidCredentials) {
		t.Errorf("IsCode should match the direct error")
	}

	wrapped := fmt.Errorf("login: %w", err)
	if !IsCode(wrapped, ErrCodeInvalidCredentials) {
		t.Errorf("IsCode should match through wrapping")
	}

	if IsCode(wrapped, ErrCodeTokenExpired) {
		t.Errorf("IsCode should not match a different code")
	}

	if IsCode(fmt.Errorf("plain"), ErrCodeTokenExpired) {
		t.Errorf("IsCode should not match a plain error")
	}
}

func TestSuggestionsNameRegisteredCommands(t *testing.T) {
	// The login command lives under "auth"; a bare "adminctl login"
	// does not exist and must never be suggested.
	for _, err := range []*ConsoleError{
		NewTokenExpiredError(),
		NewInvalidCredentialsError("Invalid credentials"),
		NewNotLoggedInError(),
		NewRestoreFailedError(fmt.Errorf("corrupt store")),
	} {
		msg := err.Error()
		if strings.Contains(msg, "'adminctl login'") {
			t.Errorf("%s suggests a command that is not registered: %s", err.Code, msg)
		}
		if !strings.Contains(msg, "adminctl auth login") {
			t.Errorf("%s should point at 'adminctl auth login', got: %s", err.Code, msg)
		}
	}
}

func TestInvalidCredentialsFallbackMessage(t *testing.T) {
	err := NewInvalidCredentialsError("")
	if !strings.Contains(err.Error(), "login failed") {
		t.Errorf("empty server message should fall back to a generic one, got: %s", err.Error())
	}
}
