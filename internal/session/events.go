// Package session owns the authenticated-session lifecycle: restoring
// a session from stored credentials at startup, login and logout, the
// periodic expiry watch, and the forced-logout countdown that follows a
// detected expiration.
package session

import "sync"

// ExpirySignal is the process-wide "a token expired somewhere" channel.
// The platform client publishes to it from any call site; the session
// manager subscribes. Call sites never need to know who owns the
// session state.
type ExpirySignal struct {
	mu   sync.Mutex
	subs []func()
}

// NewExpirySignal creates an empty signal hub.
func NewExpirySignal() *ExpirySignal {
	return &ExpirySignal{}
}

// Subscribe registers fn to run on every publish. Subscriptions are
// for the life of the process; there is no unsubscribe.
func (s *ExpirySignal) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Publish notifies every subscriber. Safe to call with none registered.
func (s *ExpirySignal) Publish() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
