package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/store"
)

// MemoryItemStore is an in-memory store.ItemStore for tests. AdjustAmount
// applies its delta under the lock, mirroring the single-statement
// atomicity of the Postgres implementation.
type MemoryItemStore struct {
	mu        sync.Mutex
	items     map[uuid.UUID]domain.Item
	ForcedErr error
}

// NewMemoryItemStore creates an empty in-memory item store.
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{items: make(map[uuid.UUID]domain.Item)}
}

var _ store.ItemStore = (*MemoryItemStore)(nil)

// Create implements store.ItemStore.Create
func (s *MemoryItemStore) Create(ctx context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return s.ForcedErr
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.items[item.ID] = *item
	return nil
}

// GetByList implements store.ItemStore.GetByList
func (s *MemoryItemStore) GetByList(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	out := make([]domain.Item, 0)
	for _, item := range s.items {
		if item.ListID == listID {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetByID implements store.ItemStore.GetByID
func (s *MemoryItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	return &item, nil
}

// AdjustAmount implements store.ItemStore.AdjustAmount
func (s *MemoryItemStore) AdjustAmount(
	ctx context.Context,
	id uuid.UUID,
	delta int,
) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	item.Amount += delta
	s.items[id] = item
	return &item, nil
}

// Update implements store.ItemStore.Update
func (s *MemoryItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.ItemPatch,
) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}
	if patch.Size != nil {
		item.Size = patch.Size
	}
	if patch.Amount != nil {
		item.Amount = *patch.Amount
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}

	s.items[id] = item
	return &item, nil
}

// Delete implements store.ItemStore.Delete
func (s *MemoryItemStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	delete(s.items, id)
	return &item, nil
}

// Get returns a snapshot of a stored item, for test assertions.
func (s *MemoryItemStore) Get(id uuid.UUID) (domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	return item, ok
}
