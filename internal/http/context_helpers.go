package httpx

import (
	"context"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

// claimsKey is an unexported context key type for token claims.
type claimsKey struct{}

// SetClaimsInContext stores decoded token claims in the request context.
func SetClaimsInContext(ctx context.Context, claims domainauth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext retrieves the decoded token claims, if the guard put
// them there.
func ClaimsFromContext(ctx context.Context) (domainauth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(domainauth.Claims)
	return claims, ok
}
