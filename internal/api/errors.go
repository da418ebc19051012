package api

import (
	"errors"
	"net/http"

	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/service/auth"
	"github.com/jtarver/shoplist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Anything unrecognized is an internal error: that includes foreign key
// violations from the store (store.ErrInvalidEntity), which deliberately
// surface as a generic 500 rather than leaking schema details.
func MapErrorToStatusCode(err error) int {
	switch {
	case auth.IsVerificationFailure(err):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyPatch):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal details never appear here; they are logged server-side.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case auth.IsVerificationFailure(err):
		return "Invalid token"

	case errors.Is(err, store.ErrListNotFound):
		return "List not found"

	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, domain.ErrEmptyPatch):
		return "No fields provided for update"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}
