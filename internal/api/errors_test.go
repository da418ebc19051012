package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/service/auth"
	"github.com/jtarver/shoplist-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusForbidden},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusForbidden},
		{name: "list not found", err: store.ErrListNotFound, want: http.StatusNotFound},
		{name: "item not found", err: store.ErrItemNotFound, want: http.StatusNotFound},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("lookup: %w", store.ErrItemNotFound),
			want: http.StatusNotFound,
		},
		{name: "validation", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{name: "empty patch", err: domain.ErrEmptyPatch, want: http.StatusBadRequest},
		{
			name: "foreign key violation stays a 500",
			err:  fmt.Errorf("%w: foreign key violation", store.ErrInvalidEntity),
			want: http.StatusInternalServerError,
		},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "List not found", GetSafeErrorMessage(store.ErrListNotFound))
	assert.Equal(t, "Item not found", GetSafeErrorMessage(store.ErrItemNotFound))
	assert.Equal(t, "Invalid token", GetSafeErrorMessage(auth.ErrExpiredToken))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Raw driver details never pass through.
	driverErr := errors.New(`pq: insert or update on table "items" violates foreign key`)
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(driverErr))
}
