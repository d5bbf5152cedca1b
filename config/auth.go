package config

import (
	"os"
	"time"
)

// AuthConfig contains authentication, cookie, and route guard configuration.
type AuthConfig struct {
	// CookieName is the name of the auth token cookie.
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"auth_token"`

	// CookieDomain is the domain for the auth token cookie.
	// Leave empty to use the request domain.
	CookieDomain string `env:"AUTH_COOKIE_DOMAIN" envDefault:""`

	// CookieMaxAge is the cookie lifetime in seconds. Default is 7 days.
	CookieMaxAge int `env:"AUTH_COOKIE_MAX_AGE" envDefault:"604800"`

	// CookieSecure marks the cookie Secure. Defaults to true outside dev
	// mode when not explicitly set.
	CookieSecure bool `env:"AUTH_COOKIE_SECURE"`

	// RevalidateInterval is how often the session store re-derives
	// authentication state from the token in the background.
	RevalidateInterval time.Duration `env:"AUTH_REVALIDATE_INTERVAL" envDefault:"30s"`

	// SessionCachePath is where the display user is persisted between runs.
	// Empty disables persistence.
	SessionCachePath string `env:"AUTH_SESSION_CACHE_PATH" envDefault:""`

	// ProtectedPrefixes are route prefixes that require authentication.
	ProtectedPrefixes []string `env:"AUTH_PROTECTED_PREFIXES" envSeparator:","`

	// AuthPrefixes are the login and registration route prefixes.
	AuthPrefixes []string `env:"AUTH_PREFIXES" envSeparator:","`

	// PublicPaths are routes reachable without authentication.
	PublicPaths []string `env:"AUTH_PUBLIC_PATHS" envSeparator:","`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.CookieMaxAge <= 0 {
		a.CookieMaxAge = 604800
	}
	if a.RevalidateInterval <= 0 {
		a.RevalidateInterval = 30 * time.Second
	}
}

// CookieSecureSet reports whether AUTH_COOKIE_SECURE was set explicitly,
// so production can default it to true without overriding an operator's
// choice.
func (a *AuthConfig) CookieSecureSet() bool {
	_, ok := os.LookupEnv("AUTH_COOKIE_SECURE")
	return ok
}
