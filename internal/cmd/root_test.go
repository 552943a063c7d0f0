package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered under %q", name, parent.Name())
	return nil
}

func TestCommandTree(t *testing.T) {
	expected := map[string][]string{
		"auth":         {"login", "logout", "status", "whoami"},
		"company":      {"list", "get", "create", "update", "delete"},
		"admin":        {"list", "create", "update", "delete"},
		"plan":         {"list", "get", "create", "update", "delete"},
		"subscription": {"list", "get", "by-company", "assign", "update", "delete"},
	}

	for name, subs := range expected {
		parent := findCommand(t, rootCmd, name)
		for _, sub := range subs {
			findCommand(t, parent, sub)
		}
	}
	findCommand(t, rootCmd, "dashboard")
	findCommand(t, rootCmd, "pincode")
	findCommand(t, rootCmd, "version")
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"output", "config", "no-color", "yes"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s", name)
	}
	output := rootCmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "text", output.DefValue)
}

func TestLoginFlags(t *testing.T) {
	login := findCommand(t, findCommand(t, rootCmd, "auth"), "login")
	assert.NotNil(t, login.Flags().Lookup("email"))
	assert.NotNil(t, login.Flags().Lookup("password"))
}

func TestCompanyCreateFlags(t *testing.T) {
	create := findCommand(t, findCommand(t, rootCmd, "company"), "create")
	for _, name := range []string{"name", "email", "phone", "pincode", "logo", "gst-number", "fiscal-year"} {
		assert.NotNil(t, create.Flags().Lookup(name), "flag %s", name)
	}
}

func TestDashboardFlags(t *testing.T) {
	dash := findCommand(t, rootCmd, "dashboard")
	assert.NotNil(t, dash.Flags().Lookup("watch"))
	assert.NotNil(t, dash.Flags().Lookup("interval"))
}

func TestSubscriptionAlias(t *testing.T) {
	sub := findCommand(t, rootCmd, "subscription")
	assert.Contains(t, sub.Aliases, "sub")
}
