package mocks

import (
	"context"

	"github.com/jtarver/shoplist-api/internal/service/auth"
)

// StubVerifier is a canned auth.TokenVerifier for tests.
type StubVerifier struct {
	Identity *auth.Identity
	Err      error
}

var _ auth.TokenVerifier = (*StubVerifier)(nil)

// Verify implements auth.TokenVerifier.Verify
func (v *StubVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	return v.Identity, nil
}
