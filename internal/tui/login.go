// Package tui holds the interactive terminal surfaces: the login form
// and the live dashboard with its expired-session overlay.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// Credentials is what the login form collects.
type Credentials struct {
	Email    string
	Password string
}

// RunLoginForm collects super admin credentials interactively.
func RunLoginForm(defaultEmail string) (Credentials, error) {
	creds := Credentials{Email: defaultEmail}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("admin@example.com").
			Value(&creds.Email).
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return fmt.Errorf("enter a valid email address")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("login form: %w", err)
	}
	return creds, nil
}

// ConfirmDestructive asks before an irreversible action.
func ConfirmDestructive(message string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on
// environment. Prompts are disabled in CI or when stdin is not a
// terminal.
func ShouldPrompt() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
	}
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}
	return IsInteractive()
}
