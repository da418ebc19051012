// Package auth defines the token verification capability the API depends on.
// The middleware only knows this narrow interface; which identity provider
// sits behind it (and whether verification is a network call or a local
// signature check) is an implementation detail chosen at wiring time.
package auth

import "context"

// Identity is the resolved user identity attached to authenticated requests.
// ID is the provider's opaque user identifier and is never parsed.
type Identity struct {
	ID    string
	Email string
}

// TokenVerifier verifies a bearer token and resolves the identity behind it.
type TokenVerifier interface {
	// Verify checks the given token with the identity provider.
	// Returns ErrInvalidToken or ErrExpiredToken when the token is
	// rejected, and any other error when verification itself failed
	// (provider outage, network error). Results are never cached; every
	// call re-verifies.
	Verify(ctx context.Context, token string) (*Identity, error)
}
