package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/session"
	"github.com/sdtaxation/adminctl/internal/tui"
	"github.com/sdtaxation/adminctl/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the super admin session",
	Long: `Manage the super admin session.

Credentials are stored under the configured storage directory
(default ~/.adminctl) and reused across runs until the token expires
or you log out.

Subcommands:
  login    Login with email and password
  logout   End the session
  status   Show current session status
  whoami   Show the logged-in super admin

Examples:
  adminctl auth login --email admin@example.com
  adminctl auth status
  adminctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	authEmail    string
	authPassword string
)

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the platform",
	Long: `Login to the SD Taxation platform as super admin.

When --email or --password is missing and the terminal is interactive,
a login form is shown. The login call never attaches a stale stored
token, so logging in works even when local storage holds garbage.

Examples:
  adminctl auth login --email admin@example.com --password secret
  adminctl auth login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		email, password := authEmail, authPassword
		if email == "" || password == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--email and --password are required in non-interactive mode")
			}
			creds, err := tui.RunLoginForm(email)
			if err != nil {
				return err
			}
			email, password = creds.Email, creds.Password
		}

		if err := a.manager.Login(cmd.Context(), email, password); err != nil {
			return ux.EnhanceError(err)
		}

		snap := a.manager.Snapshot()
		name := email
		if snap.User != nil {
			name = snap.User.Name
		}
		a.notifier.Success("logged in as %s", name)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session",
	Long: `End the super admin session.

The server is asked to invalidate the token, then local credentials are
removed. Local cleanup happens even when the server call fails, so
logout never leaves a half-authenticated state behind.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		a.manager.Initialize(cmd.Context())
		err = a.manager.Logout(cmd.Context())
		switch {
		case err == nil:
			a.notifier.Success("logged out")
		case errors.IsCode(err, errors.ErrCodeLogoutDegraded):
			a.notifier.Warning("logged out locally, but the server could not be notified")
		default:
			return err
		}
		return nil
	},
}

// sessionStatus is the status payload for --output json/yaml.
type sessionStatus struct {
	Authenticated bool   `json:"authenticated" yaml:"authenticated"`
	Email         string `json:"email,omitempty" yaml:"email,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Role          string `json:"role,omitempty" yaml:"role,omitempty"`
	ExpiresAt     int64  `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

func (s sessionStatus) String() string {
	if !s.Authenticated {
		return "not logged in"
	}
	out := fmt.Sprintf("logged in as %s <%s>", s.Name, s.Email)
	if s.Role != "" {
		out += fmt.Sprintf(", %s", s.Role)
	}
	if s.ExpiresAt > 0 {
		out += fmt.Sprintf(" (token expires at %d)", s.ExpiresAt)
	}
	return out
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		a.manager.Initialize(cmd.Context())
		snap := a.manager.Snapshot()

		status := sessionStatus{Authenticated: snap.Authenticated()}
		if snap.User != nil {
			status.Email = snap.User.Email
			status.Name = snap.User.Name
			status.Role = snap.User.Role
		}
		if exp, ok := a.store.ExpiresAt(); ok {
			status.ExpiresAt = exp
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(status)
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in super admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Profile(cmd.Context())
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(sessionStatus{
			Authenticated: true,
			Email:         resp.Data.Email,
			Name:          resp.Data.Name,
			Role:          session.RoleSuperAdmin,
		})
	},
}

func init() {
	authLoginCmd.Flags().StringVar(&authEmail, "email", "", "super admin email")
	authLoginCmd.Flags().StringVar(&authPassword, "password", "", "super admin password")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
