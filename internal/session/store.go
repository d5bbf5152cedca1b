// Package session holds the console's in-memory session state and its
// reconciliation procedure. The store is constructed once at bootstrap and
// injected; it is never a package-level singleton.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eventdesk/admin-ui/internal/token"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

// DefaultRevalidateInterval is how often CheckAuth runs in the background so
// token expiry is noticed during an open session, not only on navigation.
const DefaultRevalidateInterval = 30 * time.Second

// TokenStore is the process-level view of the persisted bearer token. The
// cookie remains the medium between browser and server; this mirrors the
// current operator's token for components that run outside a request.
type TokenStore interface {
	Token() (string, bool)
	SetToken(tok string)
	Clear()
}

// State is a point-in-time snapshot of session state.
// IsAuthenticated is always re-derived from token validity by CheckAuth and
// never restored from persisted storage.
type State struct {
	User            *domainauth.User
	IsAuthenticated bool
	IsLoading       bool
	HasHydrated     bool
}

// Store owns the session state machine.
type Store struct {
	mu     sync.Mutex
	state  State
	tokens TokenStore
	now    func() time.Time
	logger *slog.Logger
}

// StoreOptions groups dependencies for a Store.
type StoreOptions struct {
	Tokens TokenStore
	Logger *slog.Logger
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewStore constructs a session Store.
func NewStore(opts StoreOptions) *Store {
	s := &Store{
		tokens: opts.Tokens,
		now:    opts.Now,
		logger: opts.Logger,
	}
	if s.tokens == nil {
		s.tokens = NewMemoryTokenStore()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CheckAuth re-derives IsAuthenticated from the stored token's validity.
// Invalid or missing tokens clear both the session state and the token
// itself. Idempotent: repeated calls with the same token converge to the
// same state. The user object is populated separately by a profile fetch.
func (s *Store) CheckAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ok := s.tokens.Token()
	if !ok || token.IsExpiredAt(tok, s.now()) {
		if s.state.IsAuthenticated {
			s.logger.Info("session expired, clearing auth state")
		}
		s.clearLocked()
		return
	}
	s.state.IsAuthenticated = true
}

// ClearAuth removes the token and resets user, authentication, and loading
// state. Used on logout and on detected expiry.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Store) clearLocked() {
	s.tokens.Clear()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.IsLoading = false
}

// SetUser stores the display user, typically after a profile fetch or login.
func (s *Store) SetUser(u *domainauth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = u
}

// SetLoading flips the loading flag around asynchronous auth work.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = loading
}

// Hydrate restores the persisted display cache. Only the user is restored;
// IsAuthenticated stays false until CheckAuth runs, which prevents a stale
// persisted session from flashing as authenticated.
func (s *Store) Hydrate(u *domainauth.User) {
	s.mu.Lock()
	s.state.User = u
	s.state.HasHydrated = true
	s.mu.Unlock()

	s.CheckAuth()
}

// RunRevalidation invokes CheckAuth on a recurring interval until ctx is
// done. Intended to run in its own goroutine from bootstrap.
func (s *Store) RunRevalidation(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRevalidateInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckAuth()
		}
	}
}

// MemoryTokenStore is an in-process TokenStore. Login and logout handlers
// keep it in sync with the cookie.
type MemoryTokenStore struct {
	mu  sync.RWMutex
	tok string
}

// NewMemoryTokenStore constructs an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Token returns the stored token, if any.
func (m *MemoryTokenStore) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tok, m.tok != ""
}

// SetToken replaces the stored token.
func (m *MemoryTokenStore) SetToken(tok string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = tok
}

// Clear discards the stored token.
func (m *MemoryTokenStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
}
