// Package routes classifies request paths into the access classes the guard
// middleware acts on. Classification is pure string work; route lists are
// static configuration.
package routes

import "strings"

// Classification holds the non-exclusive access classes for a path.
// Guard policy treats Protected as highest priority.
type Classification struct {
	Protected bool
	Auth      bool
	Public    bool
}

// Classifier matches paths against configured prefix lists.
type Classifier struct {
	protectedPrefixes []string
	authPrefixes      []string
	publicPaths       []string
}

// Config holds the route lists for a Classifier. Empty lists fall back to
// the console defaults.
type Config struct {
	ProtectedPrefixes []string
	AuthPrefixes      []string
	PublicPaths       []string
}

// Console defaults. "/" is public by exact match only; it must never act as
// a prefix for every path.
var (
	defaultProtectedPrefixes = []string{"/dashboard", "/api"}
	defaultAuthPrefixes      = []string{"/login", "/register"}
	defaultPublicPaths       = []string{"/", "/about", "/healthz", "/metrics"}
)

// NewClassifier builds a Classifier from config, applying defaults for any
// empty list.
func NewClassifier(cfg Config) *Classifier {
	c := &Classifier{
		protectedPrefixes: cfg.ProtectedPrefixes,
		authPrefixes:      cfg.AuthPrefixes,
		publicPaths:       cfg.PublicPaths,
	}
	if len(c.protectedPrefixes) == 0 {
		c.protectedPrefixes = defaultProtectedPrefixes
	}
	if len(c.authPrefixes) == 0 {
		c.authPrefixes = defaultAuthPrefixes
	}
	if len(c.publicPaths) == 0 {
		c.publicPaths = defaultPublicPaths
	}
	return c
}

// Classify returns the access classes for a path.
func (c *Classifier) Classify(pathname string) Classification {
	return Classification{
		Protected: matchesPrefix(pathname, c.protectedPrefixes),
		Auth:      matchesPrefix(pathname, c.authPrefixes),
		Public:    matchesPublic(pathname, c.publicPaths),
	}
}

// matchesPrefix reports whether the path starts with any of the prefixes,
// respecting segment boundaries: "/dashboard" matches "/dashboard" and
// "/dashboard/sites" but not "/dashboard-archive".
func matchesPrefix(pathname string, prefixes []string) bool {
	for _, p := range prefixes {
		if pathname == p || strings.HasPrefix(pathname, p+"/") {
			return true
		}
	}
	return false
}

// matchesPublic uses exact or boundary-safe prefix matching so that a public
// "/about" does not accidentally cover "/about-us".
func matchesPublic(pathname string, publicPaths []string) bool {
	for _, p := range publicPaths {
		if pathname == p {
			return true
		}
		// Root is exact-match only.
		if p != "/" && strings.HasPrefix(pathname, p+"/") {
			return true
		}
	}
	return false
}
