// Package cart holds the transient, per-session cart state. Sessions
// live in process memory only: a restart loses every open cart, which
// matches their no-durability contract.
package cart

import (
	"errors"
	"sync"
	"time"

	"electromart/internal/domain"
)

// ErrEmptyCart is returned when a bill is finalized from a cart with
// no lines.
var ErrEmptyCart = errors.New("cart is empty")

// Session is the mutable line-item collection for one clerk session.
// One browser session can still issue overlapping requests (a
// double-submitted form), so the lock keeps the entry slice
// consistent under them.
type Session struct {
	mu      sync.Mutex
	entries []domain.CartEntry
}

func (s *Session) AddLine(e domain.CartEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) == 0
}

// Entries returns a copy so callers cannot mutate the session behind
// its back.
func (s *Session) Entries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

const (
	// sessionTTL is how long an idle cart survives before it can be
	// swept. Carts carry no durability promise, so an idle eviction
	// just looks like the session restart the contract already allows.
	sessionTTL = 2 * time.Hour
	// sweepThreshold is the map size that triggers a sweep of idle
	// sessions on the next Get.
	sweepThreshold = 256
)

// Store maps session ids (the sid cookie) to their cart sessions. The
// mutex guards the map itself; it adds no isolation across the durable
// stores, which keep the reference behavior of racing writers.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
	lastSeen map[string]time.Time
}

func NewStore() *Store {
	return &Store{
		ttl:      sessionTTL,
		sessions: make(map[string]*Session),
		lastSeen: make(map[string]time.Time),
	}
}

// Get returns the session for sid, creating it on first use. Once the
// map grows past sweepThreshold, sessions idle beyond the TTL are
// dropped so cookieless visitors cannot grow it without bound.
func (s *Store) Get(sid string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if len(s.sessions) >= sweepThreshold {
		s.sweep(now)
	}

	sess, ok := s.sessions[sid]
	if !ok {
		sess = &Session{}
		s.sessions[sid] = sess
	}
	s.lastSeen[sid] = now
	return sess
}

// sweep drops sessions idle longer than the TTL. Caller holds mu.
func (s *Store) sweep(now time.Time) {
	for sid, seen := range s.lastSeen {
		if now.Sub(seen) > s.ttl {
			delete(s.sessions, sid)
			delete(s.lastSeen, sid)
		}
	}
}
