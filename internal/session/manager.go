package session

import (
	"context"
	"sync"
	"time"

	"github.com/sdtaxation/adminctl/internal/credstore"
	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/log"
	"github.com/sdtaxation/adminctl/internal/platform"
)

// RoleSuperAdmin is the platform's single administrative role. The
// console only ever authenticates this role, so the user record
// carries it as a constant rather than trusting the server envelope.
const RoleSuperAdmin = "Super Admin"

// State is the lifecycle state of the session.
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the session state handed to
// subscribers and UI code. Consumers never touch the manager's
// internals directly.
type Snapshot struct {
	State        State
	Loading      bool
	LastError    string
	User         *credstore.Profile
	ModalVisible bool
}

// Authenticated reports whether the snapshot represents a live session.
func (s Snapshot) Authenticated() bool { return s.State == StateAuthenticated }

// API is the slice of the platform client the session manager needs.
type API interface {
	Login(ctx context.Context, email, password string) (*platform.AuthResponse, error)
	Profile(ctx context.Context) (*platform.AuthResponse, error)
	Logout(ctx context.Context) (*platform.StatusResponse, error)
}

// Manager owns the session state machine. All mutation goes through its
// methods; reads go through Snapshot. It is safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	store *credstore.Store
	api   API
	log   *log.Logger

	state        State
	loading      bool
	lastError    string
	user         *credstore.Profile
	modalVisible bool

	watchInterval time.Duration
	watchDone     chan struct{}
	countdown     *countdown

	onSessionEnd func()
	subs         []func(Snapshot)
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithWatchInterval overrides the periodic expiry-check interval.
func WithWatchInterval(d time.Duration) ManagerOption {
	return func(m *Manager) { m.watchInterval = d }
}

// WithCountdown overrides the expired-session countdown duration.
func WithCountdown(d time.Duration) ManagerOption {
	return func(m *Manager) { m.countdown.duration = d }
}

// WithOnSessionEnd registers the callback run after the expiry
// countdown completes and credentials are cleared. The front end uses
// it to return to the login view.
func WithOnSessionEnd(fn func()) ManagerOption {
	return func(m *Manager) { m.onSessionEnd = fn }
}

// WithManagerLogger sets the manager logger.
func WithManagerLogger(logger *log.Logger) ManagerOption {
	return func(m *Manager) { m.log = logger }
}

// NewManager creates a session manager and subscribes it to the expiry
// signal so 401s detected anywhere surface as the expired-session flow.
func NewManager(store *credstore.Store, api API, signal *ExpirySignal, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:         store,
		api:           api,
		log:           log.DefaultLogger(),
		state:         StateInitializing,
		loading:       true,
		watchInterval: 30 * time.Second,
	}
	m.countdown = newCountdown(2*time.Second, m.finishExpiry)
	for _, opt := range opts {
		opt(m)
	}
	if signal != nil {
		signal.Subscribe(m.NotifyExpired)
	}
	return m
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:        m.state,
		Loading:      m.loading,
		LastError:    m.lastError,
		ModalVisible: m.modalVisible,
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// Subscribe registers fn to run after every state change. The callback
// receives a snapshot and runs outside the manager lock.
func (m *Manager) Subscribe(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// notifyLocked snapshots under the lock, then fans out after release.
func (m *Manager) notifyLocked() func() {
	snap := m.snapshotLocked()
	subs := make([]func(Snapshot), len(m.subs))
	copy(subs, m.subs)
	return func() {
		for _, fn := range subs {
			fn(snap)
		}
	}
}

// Initialize restores the session from stored credentials. It runs once
// at process start; the loading flag clears on every path out.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	m.state = StateInitializing
	m.loading = true
	m.mu.Unlock()

	token := m.store.Token()
	profile := m.store.Profile()

	if token == "" {
		// Nothing to restore. Any orphaned profile data is swept too.
		if profile != nil {
			if err := m.store.ClearAll(); err != nil {
				m.log.WithError(err).Warn("failed to sweep orphaned session data")
			}
		}
		m.becomeUnauthenticated(false)
		return
	}

	if m.store.IsExpired() {
		// The user had a session and it lapsed while the process was
		// down. Clear it and tell them, which a never-logged-in user
		// does not get.
		m.clearCredentials()
		m.becomeUnauthenticated(true)
		return
	}

	resp, err := m.api.Profile(ctx)
	switch {
	case err == nil:
		// Prefer fresher server data over the cached copy.
		if resp.Data.ID != "" {
			profile = &credstore.Profile{ID: resp.Data.ID, Name: resp.Data.Name, Email: resp.Data.Email, Role: RoleSuperAdmin}
			if serr := m.store.SetProfile(*profile); serr != nil {
				m.log.WithError(serr).Warn("failed to refresh cached profile")
			}
		}
		if profile == nil {
			// A token with no user record on either side cannot become
			// a session with a current user. Discard it quietly; the
			// expired-session notice is for sessions that lapsed.
			m.log.WithError(errors.NewRestoreFailedError(nil)).Warn("stored token has no user record, discarding it")
			m.clearCredentials()
			m.becomeUnauthenticated(false)
			return
		}
		m.becomeAuthenticated(profile)

	case platform.IsTokenExpired(err):
		m.clearCredentials()
		m.becomeUnauthenticated(true)

	default:
		// Transient outage. If the token is still inside its known
		// validity window, keep the session alive on cached data.
		if m.store.IsExpired() {
			m.clearCredentials()
			m.becomeUnauthenticated(true)
			return
		}
		if profile == nil {
			// Continuing on cached data needs cached data.
			m.log.WithError(errors.NewRestoreFailedError(err)).Warn("no cached profile to continue with, discarding saved session")
			m.clearCredentials()
			m.becomeUnauthenticated(false)
			return
		}
		m.log.WithError(err).Warn("profile verification failed, continuing with cached session")
		m.becomeAuthenticated(profile)
	}
}

// Login authenticates with the platform and persists the session. On
// rejection it records lastError and returns a credential error; the
// session stays unauthenticated.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	m.loading = true
	m.lastError = ""
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()

	resp, err := m.api.Login(ctx, email, password)
	if errors.IsCode(err, errors.ErrCodeAPIUnavailable) {
		// The server never saw the credentials; this is an outage, not
		// a rejection, and it must surface as one.
		m.mu.Lock()
		m.loading = false
		m.lastError = platform.ErrorMessage(err)
		notify = m.notifyLocked()
		m.mu.Unlock()
		notify()
		return err
	}
	if err != nil || !resp.Success {
		msg := ""
		if err != nil {
			msg = platform.ErrorMessage(err)
		} else {
			msg = resp.Message
		}
		cerr := errors.NewInvalidCredentialsError(msg)

		m.mu.Lock()
		m.loading = false
		m.lastError = cerr.Message
		notify = m.notifyLocked()
		m.mu.Unlock()
		notify()
		return cerr
	}

	if err := m.store.SetToken(resp.Token); err != nil {
		m.mu.Lock()
		m.loading = false
		m.lastError = "could not persist session"
		notify = m.notifyLocked()
		m.mu.Unlock()
		notify()
		return err
	}
	profile := credstore.Profile{ID: resp.Data.ID, Name: resp.Data.Name, Email: resp.Data.Email, Role: RoleSuperAdmin}
	if err := m.store.SetProfile(profile); err != nil {
		m.log.WithError(err).Warn("failed to persist profile")
	}

	m.becomeAuthenticated(&profile)
	m.log.Info("logged in", "user", profile.Email)
	return nil
}

// Logout ends the session. The server call is best-effort: local
// credentials are cleared and the state reset no matter what. A
// degraded error is returned when the server-side invalidation failed
// so the caller can show a partial-success notice; it is never a
// reason to skip local cleanup.
func (m *Manager) Logout(ctx context.Context) error {
	var serverErr error
	m.mu.Lock()
	authed := m.state == StateAuthenticated
	m.mu.Unlock()

	if authed {
		if _, err := m.api.Logout(ctx); err != nil {
			serverErr = err
			m.log.WithError(err).Warn("server-side logout failed, clearing local session anyway")
		}
	}

	m.clearCredentials()
	m.mu.Lock()
	m.stopWatchLocked()
	m.countdown.stop()
	m.state = StateUnauthenticated
	m.user = nil
	m.lastError = ""
	m.loading = false
	m.modalVisible = false
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()

	if serverErr != nil {
		return errors.Wrap(errors.ErrCodeLogoutDegraded, "logged out locally, but the server could not be notified", serverErr)
	}
	return nil
}

// NotifyExpired is the entry point for the process-wide expiry signal.
// It shows the expired-session modal and arms the countdown; it does
// not clear credentials, that happens when the countdown completes.
func (m *Manager) NotifyExpired() {
	m.mu.Lock()
	if m.modalVisible {
		m.mu.Unlock()
		return
	}
	m.modalVisible = true
	m.countdown.arm()
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()
}

// HideModal toggles the expired-session modal off externally. The
// countdown is disarmed so the next expiry re-arms from the full
// duration, never from a stale remainder.
func (m *Manager) HideModal() {
	m.mu.Lock()
	m.modalVisible = false
	m.countdown.stop()
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()
}

// CountdownRemaining reports how long until the expiry countdown fires,
// zero when it is not armed. The TUI renders it.
func (m *Manager) CountdownRemaining() time.Duration {
	return m.countdown.remaining()
}

// finishExpiry runs when the countdown reaches zero: the detected
// expiration becomes a real logout.
func (m *Manager) finishExpiry() {
	m.clearCredentials()

	m.mu.Lock()
	m.stopWatchLocked()
	m.state = StateUnauthenticated
	m.user = nil
	m.modalVisible = false
	m.loading = false
	fn := m.onSessionEnd
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()

	m.log.Info("session expired, returning to login")
	if fn != nil {
		fn()
	}
}

func (m *Manager) becomeAuthenticated(profile *credstore.Profile) {
	if profile.Role == "" {
		// Cached records written before the role was stored.
		profile.Role = RoleSuperAdmin
	}
	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = profile
	m.loading = false
	m.lastError = ""
	m.startWatchLocked()
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()
}

func (m *Manager) becomeUnauthenticated(expired bool) {
	m.mu.Lock()
	m.stopWatchLocked()
	m.state = StateUnauthenticated
	m.user = nil
	m.loading = false
	if expired {
		m.modalVisible = true
		m.countdown.arm()
	}
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()
}

func (m *Manager) clearCredentials() {
	if err := m.store.ClearAll(); err != nil {
		m.log.WithError(err).Warn("failed to clear stored credentials")
	}
}
