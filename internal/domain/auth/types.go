// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.
package auth

import "time"

// User is the display cache of the authenticated principal. It is populated
// by a profile fetch after login and may be persisted between runs; it never
// carries authorization state on its own.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// Claims is the decoded payload of a bearer token. The remote API signs
// tokens; the console only reads the expiry and identity claims.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Valid reports whether the claims carry a usable expiry that is still in
// the future relative to now.
func (c Claims) Valid(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.After(now)
}
