package session

import "time"

// startWatchLocked arms the periodic expiry check. Runs only while the
// session is authenticated; idempotent. Caller holds m.mu.
func (m *Manager) startWatchLocked() {
	if m.watchDone != nil {
		return
	}
	done := make(chan struct{})
	m.watchDone = done

	go func() {
		ticker := time.NewTicker(m.watchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				m.checkExpiry()
			}
		}
	}()
}

// stopWatchLocked tears the watch down. Caller holds m.mu.
func (m *Manager) stopWatchLocked() {
	if m.watchDone != nil {
		close(m.watchDone)
		m.watchDone = nil
	}
}

// checkExpiry is one tick of the watch. Detection only: it raises the
// modal and arms the countdown, leaving credential cleanup to the
// countdown so the user sees the notice first.
func (m *Manager) checkExpiry() {
	m.mu.Lock()
	if m.state != StateAuthenticated || m.modalVisible {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	if !m.store.IsExpired() {
		return
	}

	m.mu.Lock()
	if m.state != StateAuthenticated || m.modalVisible {
		m.mu.Unlock()
		return
	}
	m.modalVisible = true
	m.countdown.arm()
	notify := m.notifyLocked()
	m.mu.Unlock()
	notify()
}
