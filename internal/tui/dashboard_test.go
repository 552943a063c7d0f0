package tui

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdtaxation/adminctl/internal/credstore"
	"github.com/sdtaxation/adminctl/internal/log"
	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/session"
)

func testData() platform.DashboardData {
	var d platform.DashboardData
	d.Companies.Total = 12
	d.Companies.Active = 9
	d.Subscriptions.Total = 10
	d.Subscriptions.Active = 8
	d.Summary.TotalRevenue = 125000
	d.CompanyBalances = []platform.CompanyBalance{
		{CompanyName: "Acme Tax LLP", Status: "active", Balance: 4200.50},
	}
	return d
}

type stubAPI struct{}

func (stubAPI) Login(ctx context.Context, email, password string) (*platform.AuthResponse, error) {
	return nil, stderrors.New("not used")
}
func (stubAPI) Profile(ctx context.Context) (*platform.AuthResponse, error) {
	return nil, stderrors.New("not used")
}
func (stubAPI) Logout(ctx context.Context) (*platform.StatusResponse, error) {
	return &platform.StatusResponse{Success: true}, nil
}

func testManager(t *testing.T) *session.Manager {
	t.Helper()
	store := credstore.New(t.TempDir(), log.Default())
	return session.NewManager(store, stubAPI{}, session.NewExpirySignal(),
		session.WithCountdown(time.Minute))
}

func newTestDashboard(t *testing.T, fetch FetchFunc) DashboardModel {
	t.Helper()
	return NewDashboard(fetch, testManager(t), 0)
}

func TestDashboardShowsLoadingThenData(t *testing.T) {
	m := newTestDashboard(t, nil)
	assert.Contains(t, m.View(), "loading dashboard")

	updated, _ := m.Update(DataMsg{Data: testData()})
	m = updated.(DashboardModel)

	view := m.View()
	assert.Contains(t, view, "Companies 12 (9 active)")
	assert.Contains(t, view, "Acme Tax LLP")
	assert.NotContains(t, view, "loading")
}

func TestDashboardKeepsStaleDataOnFailedRefresh(t *testing.T) {
	m := newTestDashboard(t, nil)
	updated, _ := m.Update(DataMsg{Data: testData()})
	m = updated.(DashboardModel)

	updated, _ = m.Update(LoadFailedMsg{Err: stderrors.New("connection refused")})
	m = updated.(DashboardModel)

	view := m.View()
	assert.Contains(t, view, "refresh failed: connection refused")
	assert.Contains(t, view, "Acme Tax LLP", "previous payload stays on screen")
}

func TestDashboardQuitsOnQ(t *testing.T) {
	m := newTestDashboard(t, nil)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(DashboardModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestDashboardExpiredOverlay(t *testing.T) {
	m := newTestDashboard(t, nil)
	updated, _ := m.Update(DataMsg{Data: testData()})
	m = updated.(DashboardModel)

	updated, cmd := m.Update(SessionMsg{Snapshot: session.Snapshot{
		State:        session.StateAuthenticated,
		ModalVisible: true,
	}})
	m = updated.(DashboardModel)

	require.NotNil(t, cmd, "overlay starts the countdown redraw")
	view := m.View()
	assert.Contains(t, view, "Session expired")
	assert.Contains(t, view, "Returning to login")

	// The overlay ignores quit keys; the countdown is not cancellable.
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(DashboardModel)
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
	assert.Contains(t, m.View(), "Session expired")
}

func TestDashboardQuitsWhenSessionEnds(t *testing.T) {
	m := newTestDashboard(t, nil)
	updated, cmd := m.Update(SessionMsg{Snapshot: session.Snapshot{
		State: session.StateUnauthenticated,
	}})
	m = updated.(DashboardModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	_ = m
}

func TestDashboardRefreshTickIgnoredWhileModal(t *testing.T) {
	m := newTestDashboard(t, nil)
	updated, _ := m.Update(SessionMsg{Snapshot: session.Snapshot{
		State:        session.StateAuthenticated,
		ModalVisible: true,
	}})
	m = updated.(DashboardModel)

	updated, cmd := m.Update(refreshTickMsg(time.Now()))
	m = updated.(DashboardModel)
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
}

func TestBalanceRows(t *testing.T) {
	data := testData()
	rows := balanceRows(data.CompanyBalances)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Tax LLP", rows[0][0])
	assert.Equal(t, "4200.50", rows[0][2])
	assert.Equal(t, "-", rows[0][3], "no subscription renders a dash")
}

func TestDashboardHelpMentionsAutoRefresh(t *testing.T) {
	m := NewDashboard(nil, testManager(t), 15*time.Second)
	updated, _ := m.Update(DataMsg{Data: testData()})
	m = updated.(DashboardModel)
	assert.True(t, strings.Contains(m.View(), "auto-refresh 15s"))
}
