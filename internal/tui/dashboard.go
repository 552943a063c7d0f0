package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/session"
)

// FetchFunc loads a fresh dashboard payload.
type FetchFunc func(ctx context.Context) (*platform.DashboardResponse, error)

// Messages the dashboard model reacts to.

// DataMsg carries a freshly loaded dashboard payload.
type DataMsg struct {
	Data platform.DashboardData
}

// LoadFailedMsg reports a failed refresh. The previous payload stays on
// screen.
type LoadFailedMsg struct {
	Err error
}

// SessionMsg carries a session state change into the UI.
type SessionMsg struct {
	Snapshot session.Snapshot
}

// refreshTickMsg schedules the next reload.
type refreshTickMsg time.Time

// countdownTickMsg redraws the expiry overlay once per second.
type countdownTickMsg time.Time

// Styles contains lipgloss styles for the dashboard.
type Styles struct {
	Title   lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Overlay lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")).
			MarginBottom(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 3),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginTop(1),
	}
}

// DashboardModel is the live dashboard state.
type DashboardModel struct {
	fetch     FetchFunc
	manager   *session.Manager
	interval  time.Duration
	styles    Styles
	spinner   spinner.Model
	balances  table.Model
	data      *platform.DashboardData
	lastError string
	loading   bool
	modal     bool
	remaining time.Duration
	width     int
	height    int
	quitting  bool
}

// NewDashboard creates the dashboard model. interval is the auto-refresh
// period for watch mode; zero disables refresh.
func NewDashboard(fetch FetchFunc, manager *session.Manager, interval time.Duration) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))

	columns := []table.Column{
		{Title: "COMPANY", Width: 28},
		{Title: "STATUS", Width: 10},
		{Title: "BALANCE", Width: 12},
		{Title: "PLAN", Width: 16},
	}
	balances := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return DashboardModel{
		fetch:    fetch,
		manager:  manager,
		interval: interval,
		styles:   DefaultStyles(),
		spinner:  sp,
		balances: balances,
		loading:  true,
	}
}

// Init starts the spinner and the first load.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m DashboardModel) loadCmd() tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		resp, err := fetch(ctx)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return DataMsg{Data: resp.Data}
	}
}

func (m DashboardModel) scheduleRefresh() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// The expired-session overlay is informational only; its
			// countdown keeps running regardless of input.
			if !m.modal {
				m.quitting = true
				return m, tea.Quit
			}
		case "r":
			if !m.modal && !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, m.loadCmd())
			}
		}
		var cmd tea.Cmd
		m.balances, cmd = m.balances.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DataMsg:
		m.loading = false
		m.lastError = ""
		m.data = &msg.Data
		m.balances.SetRows(balanceRows(msg.Data.CompanyBalances))
		return m, m.scheduleRefresh()

	case LoadFailedMsg:
		m.loading = false
		m.lastError = msg.Err.Error()
		return m, m.scheduleRefresh()

	case refreshTickMsg:
		if m.modal {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())

	case SessionMsg:
		wasVisible := m.modal
		m.modal = msg.Snapshot.ModalVisible
		if m.modal {
			m.remaining = m.manager.CountdownRemaining()
			if !wasVisible {
				return m, countdownTick()
			}
			return m, nil
		}
		if !msg.Snapshot.Authenticated() && msg.Snapshot.State != session.StateInitializing {
			// Session ended underneath the dashboard.
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case countdownTickMsg:
		if !m.modal {
			return m, nil
		}
		m.remaining = m.manager.CountdownRemaining()
		return m, countdownTick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.modal {
		return m.renderExpiredOverlay()
	}

	var out string
	out += m.styles.Title.Render("SD Taxation · super admin dashboard") + "\n"

	if m.loading && m.data == nil {
		return out + m.spinner.View() + " loading dashboard..."
	}
	if m.lastError != "" {
		out += m.styles.Error.Render("refresh failed: "+m.lastError) + "\n"
	}
	if m.data != nil {
		out += m.renderSummary()
		out += "\n" + m.balances.View() + "\n"
	}

	help := "q quit · r refresh"
	if m.interval > 0 {
		help += fmt.Sprintf(" · auto-refresh %s", m.interval)
	}
	out += m.styles.Help.Render(help)
	return out
}

func (m DashboardModel) renderSummary() string {
	d := m.data
	return fmt.Sprintf(
		"Companies %d (%d active)   Subscriptions %d (%d active)   Revenue %.2f\n",
		d.Companies.Total, d.Companies.Active,
		d.Subscriptions.Total, d.Subscriptions.Active,
		d.Summary.TotalRevenue,
	)
}

func (m DashboardModel) renderExpiredOverlay() string {
	secs := int(m.remaining.Round(time.Second) / time.Second)
	if secs < 0 {
		secs = 0
	}
	body := m.styles.Error.Render("Session expired") + "\n\n" +
		"Your session is no longer valid.\n" +
		fmt.Sprintf("Returning to login in %d ...", secs)
	return m.styles.Overlay.Render(body)
}

func balanceRows(balances []platform.CompanyBalance) []table.Row {
	rows := make([]table.Row, 0, len(balances))
	for _, b := range balances {
		plan := "-"
		if b.Subscription != nil {
			plan = b.Subscription.PlanName
		}
		rows = append(rows, table.Row{
			b.CompanyName,
			b.Status,
			fmt.Sprintf("%.2f", b.Balance),
			plan,
		})
	}
	return rows
}
