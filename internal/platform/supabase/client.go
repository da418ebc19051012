// Package supabase implements token verification against a Supabase-style
// identity provider, either by asking the provider directly or by checking
// the provider's signed access tokens locally.
package supabase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jtarver/shoplist-api/internal/service/auth"
)

// defaultTimeout bounds the verification round trip so a hung provider
// cannot hold request handlers indefinitely.
const defaultTimeout = 10 * time.Second

// userResponse is the subset of the provider's user record we consume.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client verifies tokens with a remote GET /auth/v1/user call.
// Every Verify call is a fresh round trip; nothing is cached.
type Client struct {
	http   *resty.Client
	apiKey string
	logger *slog.Logger
}

// NewClient creates a verifier for the provider at baseURL. apiKey is the
// project API key the provider expects alongside the user's token.
// If logger is nil, the default logger is used.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetRetryCount(0), // errors are terminal per request, no retries
		apiKey: apiKey,
		logger: logger.With(slog.String("component", "supabase_client")),
	}
}

// Ensure Client implements auth.TokenVerifier
var _ auth.TokenVerifier = (*Client)(nil)

// Verify implements auth.TokenVerifier.Verify
func (c *Client) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	var user userResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("apikey", c.apiKey).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		c.logger.Error("identity provider request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusOK:
		if user.ID == "" {
			// 200 with no user record counts as a rejected token.
			c.logger.Warn("identity provider returned no user for token")
			return nil, auth.ErrInvalidToken
		}
		return &auth.Identity{ID: user.ID, Email: user.Email}, nil

	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		c.logger.Debug("identity provider rejected token",
			slog.Int("status", resp.StatusCode()))
		return nil, auth.ErrInvalidToken

	default:
		c.logger.Error("unexpected identity provider response",
			slog.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("unexpected identity provider response: %d", resp.StatusCode())
	}
}
