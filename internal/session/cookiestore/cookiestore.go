// Package cookiestore persists the bearer token in a cookie readable by both
// the guard middleware and the page handlers. The cookie is the only place
// the token lives between requests.
package cookiestore

import "net/http"

// DefaultMaxAge is the cookie lifetime in seconds (7 days).
const DefaultMaxAge = 7 * 24 * 60 * 60

// Store reads and writes the auth token cookie.
type Store struct {
	name   string
	domain string
	maxAge int
	secure bool
}

// Config holds cookie attributes for a Store.
type Config struct {
	// Name is the cookie name. Defaults to "auth_token".
	Name string
	// Domain restricts the cookie domain. Leave empty to use the request domain.
	Domain string
	// MaxAge is the cookie lifetime in seconds. Defaults to DefaultMaxAge.
	MaxAge int
	// Secure marks the cookie Secure; set in production.
	Secure bool
}

// New builds a Store, applying defaults for zero-value config fields.
func New(cfg Config) *Store {
	if cfg.Name == "" {
		cfg.Name = "auth_token"
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	return &Store{
		name:   cfg.Name,
		domain: cfg.Domain,
		maxAge: cfg.MaxAge,
		secure: cfg.Secure,
	}
}

// Name returns the cookie name the store manages.
func (s *Store) Name() string { return s.name }

// Get returns the token from the request cookie, if present and non-empty.
func (s *Store) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set writes the token cookie with the configured lifetime and flags.
// SameSite is always Strict: the token must never ride along on cross-site
// requests.
func (s *Store) Set(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    tok,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the token cookie immediately, mirroring the attributes used
// when setting it so browsers reliably delete it.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
