package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jtarver/shoplist-api/internal/api/shared"
	"github.com/jtarver/shoplist-api/internal/service/auth"
)

// AuthMiddleware guards the protected route group. Every request presents a
// bearer token that is re-verified with the identity provider; verified
// identities are not cached between requests.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate extracts the bearer token from the Authorization header and
// resolves it to a user identity. A missing or malformed header is 401, a
// rejected token is 403, and a verification failure (provider outage,
// network error) is 500.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token provided")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}
		token := parts[1]

		identity, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			if auth.IsVerificationFailure(err) {
				shared.RespondWithError(w, r, http.StatusForbidden, "Invalid token")
				return
			}
			slog.ErrorContext(r.Context(), "token verification error",
				slog.String("error", err.Error()))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the resolved identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (*auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(*auth.Identity)
	return identity, ok
}
