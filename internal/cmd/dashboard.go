package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/session"
	"github.com/sdtaxation/adminctl/internal/tui"
	"github.com/sdtaxation/adminctl/internal/ux"
)

var (
	dashboardWatch    bool
	dashboardInterval time.Duration
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the platform dashboard",
	Long: `Show the super admin dashboard: platform totals, subscription and
company statistics, per-company balances and recent activity.

With --watch the dashboard stays open and refreshes itself. A session
that expires while watching shows the countdown overlay and then exits
back to the shell.

Examples:
  adminctl dashboard
  adminctl dashboard -o json
  adminctl dashboard --watch --interval 15s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		if dashboardWatch {
			return runDashboardWatch(a)
		}

		resp, err := a.client.Dashboard(cmd.Context())
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.DashboardSummaryView(resp.Data))
		}
		return f.Format(resp.Data)
	},
}

func runDashboardWatch(a *app) error {
	model := tui.NewDashboard(a.client.Dashboard, a.manager, dashboardInterval)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Session changes flow into the UI, including the expiry overlay
	// raised by the periodic watch or any 401.
	a.manager.Subscribe(func(snap session.Snapshot) {
		program.Send(tui.SessionMsg{Snapshot: snap})
	})

	_, err := program.Run()
	return err
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardWatch, "watch", false, "keep the dashboard open and auto-refresh")
	dashboardCmd.Flags().DurationVar(&dashboardInterval, "interval", 30*time.Second, "auto-refresh interval for --watch")
	rootCmd.AddCommand(dashboardCmd)
}
