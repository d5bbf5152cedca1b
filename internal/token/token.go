// Package token decodes the bearer token issued by the remote API and checks
// its expiry. The API signs tokens and verifies them on every call; the
// console never needs the signing key, so decoding is unverified on purpose.
// Every decode failure folds into "expired"; an unreadable token must never
// be treated as a live session.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

var errNoExpiry = errors.New("token has no usable expiry claim")

// parser is shared; ParseUnverified does no signature work and is safe for
// concurrent use.
var parser = jwt.NewParser()

// Decode extracts claims from a token without verifying its signature.
// Returns an error for empty, malformed, or undecodable tokens and for
// tokens without a usable exp claim.
func Decode(tok string) (domainauth.Claims, error) {
	if tok == "" {
		return domainauth.Claims{}, errors.New("token is empty")
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return domainauth.Claims{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domainauth.Claims{}, errNoExpiry
	}

	out := domainauth.Claims{ExpiresAt: exp.Time}
	if sub, subErr := claims.GetSubject(); subErr == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	return out, nil
}

// IsExpired reports whether the token should be treated as expired.
// Fail-closed: any token that cannot be decoded, or whose exp is not in the
// future, is expired. It never panics and never surfaces decode errors.
func IsExpired(tok string) bool {
	return IsExpiredAt(tok, time.Now())
}

// IsExpiredAt is IsExpired evaluated against an explicit clock, for callers
// that control time.
func IsExpiredAt(tok string, now time.Time) bool {
	claims, err := Decode(tok)
	if err != nil {
		return true
	}
	return !claims.Valid(now)
}
