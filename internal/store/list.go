package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
)

// ListStore defines the interface for list persistence. Every method maps
// to a single round trip against the backing store.
type ListStore interface {
	// Create saves a new list. The store assigns the generated ID and
	// fills it in on the passed entity before returning.
	Create(ctx context.Context, list *domain.List) error

	// GetByCreator retrieves all lists owned by the given creator.
	// Returns an empty slice (not an error) when the creator has no lists;
	// the "no lists" policy is decided by the caller.
	GetByCreator(ctx context.Context, creatorID string) ([]domain.List, error)

	// GetForCreator retrieves a list by ID, scoped to the given creator.
	// Returns ErrListNotFound both when the ID does not exist and when it
	// exists but belongs to a different creator, so callers cannot
	// distinguish the two cases.
	GetForCreator(ctx context.Context, id uuid.UUID, creatorID string) (*domain.List, error)

	// Update overwrites both mutable fields of the list and returns the
	// updated row. There is no partial update for lists.
	// Returns ErrListNotFound if the ID does not exist.
	Update(ctx context.Context, id uuid.UUID, place, listType string) (*domain.List, error)

	// Delete removes a list by ID and returns the deleted row.
	// Returns ErrListNotFound if the ID does not exist. Items belonging to
	// the list are left in place.
	Delete(ctx context.Context, id uuid.UUID) (*domain.List, error)
}
