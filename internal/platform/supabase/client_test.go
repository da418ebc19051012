package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jtarver/shoplist-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       any
		wantID     string
		wantErr    error
		wantOutage bool
	}{
		{
			name:   "valid token resolves identity",
			status: http.StatusOK,
			body:   map[string]string{"id": "user-1", "email": "u1@example.com"},
			wantID: "user-1",
		},
		{
			name:    "unauthorized maps to invalid token",
			status:  http.StatusUnauthorized,
			body:    map[string]string{"message": "invalid JWT"},
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "forbidden maps to invalid token",
			status:  http.StatusForbidden,
			body:    map[string]string{"message": "nope"},
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "ok with empty user maps to invalid token",
			status:  http.StatusOK,
			body:    map[string]string{},
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:       "provider error is not a token rejection",
			status:     http.StatusInternalServerError,
			body:       map[string]string{"message": "boom"},
			wantOutage: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/user", r.URL.Path)
				assert.Equal(t, "Bearer the-token", r.Header.Get("Authorization"))
				assert.Equal(t, "anon-key", r.Header.Get("apikey"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "anon-key", nil)
			identity, err := client.Verify(context.Background(), "the-token")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
			case tt.wantOutage:
				require.Error(t, err)
				assert.False(t, auth.IsVerificationFailure(err),
					"provider outage must not look like a rejected token")
				assert.Nil(t, identity)
			default:
				require.NoError(t, err)
				require.NotNil(t, identity)
				assert.Equal(t, tt.wantID, identity.ID)
			}
		})
	}
}

func TestClientVerify_UnreachableProvider(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", "anon-key", nil)
	identity, err := client.Verify(context.Background(), "the-token")

	require.Error(t, err)
	assert.False(t, auth.IsVerificationFailure(err))
	assert.Nil(t, identity)
}
