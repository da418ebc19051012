package auth

import "errors"

var (
	// ErrInvalidToken is returned when a token fails verification, is
	// malformed, or resolves to no user at the provider.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")
)

// IsVerificationFailure reports whether the error means the token itself was
// rejected, as opposed to verification being impossible (provider outage).
// The middleware maps the former to 403 and the latter to 500.
func IsVerificationFailure(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
