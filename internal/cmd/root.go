// Package cmd wires the adminctl command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Super admin console for the SD Taxation platform",
	Long: `adminctl is the super admin console for the SD Taxation platform.
It manages tenant companies, company administrators, subscription plans
and company subscriptions, and shows the platform dashboard.

Sessions are restored from stored credentials on every run; an expired
session is reported and cleared rather than silently failing calls.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagOutput  string
	flagConfig  string
	flagNoColor bool
	flagYes     bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is $ADMINCTL_CONFIG or env only)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation prompts")
}
