package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
)

// ItemStore defines the interface for item persistence. Every method maps
// to a single round trip against the backing store.
type ItemStore interface {
	// Create saves a new item. The store assigns the generated ID and
	// fills it in on the passed entity before returning.
	// Returns ErrInvalidEntity (wrapped) if the referenced list does not
	// exist and the backing store enforces the foreign key.
	Create(ctx context.Context, item *domain.Item) error

	// GetByList retrieves all items belonging to the given list.
	// Returns an empty slice when the list has no items.
	GetByList(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)

	// GetByID retrieves an item by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// AdjustAmount applies amount = amount + delta in a single statement
	// and returns the updated row. The arithmetic happens inside the store
	// so concurrent adjustments on the same row serialize there; there is
	// no read-modify-write in the application. Amount is not clamped and
	// may go negative.
	// Returns ErrItemNotFound if the item does not exist.
	AdjustAmount(ctx context.Context, id uuid.UUID, delta int) (*domain.Item, error)

	// Update applies a partial update, setting only the fields present in
	// the patch, and returns the updated row.
	// Returns domain.ErrEmptyPatch if the patch is empty and
	// ErrItemNotFound if the item does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.ItemPatch) (*domain.Item, error)

	// Delete removes an item by ID and returns the deleted row.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}
