package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestCheckAuth_ValidToken(t *testing.T) {
	tokens := NewMemoryTokenStore()
	tokens.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	s := NewStore(StoreOptions{Tokens: tokens})

	s.CheckAuth()

	assert.True(t, s.Snapshot().IsAuthenticated)
	_, ok := tokens.Token()
	assert.True(t, ok)
}

func TestCheckAuth_MissingToken(t *testing.T) {
	s := NewStore(StoreOptions{Tokens: NewMemoryTokenStore()})

	s.CheckAuth()

	st := s.Snapshot()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.User)
}

func TestCheckAuth_ExpiredTokenClearsEverything(t *testing.T) {
	tokens := NewMemoryTokenStore()
	tokens.SetToken(signedToken(t, time.Now().Add(-time.Minute)))
	s := NewStore(StoreOptions{Tokens: tokens})
	s.SetUser(&domainauth.User{Email: "op@example.com"})
	s.SetLoading(true)

	s.CheckAuth()

	st := s.Snapshot()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.User)
	assert.False(t, st.IsLoading)
	_, ok := tokens.Token()
	assert.False(t, ok, "expired token should be removed from the store")
}

func TestCheckAuth_Idempotent(t *testing.T) {
	tokens := NewMemoryTokenStore()
	tokens.SetToken(signedToken(t, time.Now().Add(-time.Minute)))
	s := NewStore(StoreOptions{Tokens: tokens})

	s.CheckAuth()
	first := s.Snapshot()
	s.CheckAuth()
	s.CheckAuth()

	assert.Equal(t, first, s.Snapshot())
}

func TestCheckAuth_ExpiryObservedByClock(t *testing.T) {
	exp := time.Now().Add(time.Minute)
	tokens := NewMemoryTokenStore()
	tokens.SetToken(signedToken(t, exp))

	now := time.Now()
	s := NewStore(StoreOptions{Tokens: tokens, Now: func() time.Time { return now }})

	s.CheckAuth()
	assert.True(t, s.Snapshot().IsAuthenticated)

	// Advance the clock past expiry; the same token now fails the check.
	now = exp.Add(time.Second)
	s.CheckAuth()
	assert.False(t, s.Snapshot().IsAuthenticated)
}

func TestClearAuth(t *testing.T) {
	tokens := NewMemoryTokenStore()
	tokens.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	s := NewStore(StoreOptions{Tokens: tokens})
	s.Hydrate(&domainauth.User{Email: "op@example.com"})
	require.True(t, s.Snapshot().IsAuthenticated)

	s.ClearAuth()

	st := s.Snapshot()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.User)
	_, ok := tokens.Token()
	assert.False(t, ok)
}

func TestHydrate_DoesNotTrustPersistedState(t *testing.T) {
	// No token present: a hydrated user must not appear authenticated.
	s := NewStore(StoreOptions{Tokens: NewMemoryTokenStore()})

	s.Hydrate(&domainauth.User{Email: "op@example.com"})

	st := s.Snapshot()
	assert.True(t, st.HasHydrated)
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.User, "user is cleared when the token check fails")
}

func TestHydrate_WithValidToken(t *testing.T) {
	tokens := NewMemoryTokenStore()
	tokens.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	s := NewStore(StoreOptions{Tokens: tokens})

	u := &domainauth.User{Email: "op@example.com"}
	s.Hydrate(u)

	st := s.Snapshot()
	assert.True(t, st.HasHydrated)
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, u, st.User)
}

func TestMemoryTokenStore(t *testing.T) {
	m := NewMemoryTokenStore()

	_, ok := m.Token()
	assert.False(t, ok)

	m.SetToken("tok")
	tok, ok := m.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", tok)

	m.Clear()
	_, ok = m.Token()
	assert.False(t, ok)
}
