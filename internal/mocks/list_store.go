package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/store"
)

// MemoryListStore is an in-memory store.ListStore for tests.
// ForcedErr, when set, is returned by every method so tests can exercise
// the 500 paths.
type MemoryListStore struct {
	mu        sync.Mutex
	lists     map[uuid.UUID]domain.List
	ForcedErr error
}

// NewMemoryListStore creates an empty in-memory list store.
func NewMemoryListStore() *MemoryListStore {
	return &MemoryListStore{lists: make(map[uuid.UUID]domain.List)}
}

var _ store.ListStore = (*MemoryListStore)(nil)

// Create implements store.ListStore.Create
func (s *MemoryListStore) Create(ctx context.Context, list *domain.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return s.ForcedErr
	}

	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	s.lists[list.ID] = *list
	return nil
}

// GetByCreator implements store.ListStore.GetByCreator
func (s *MemoryListStore) GetByCreator(ctx context.Context, creatorID string) ([]domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	out := make([]domain.List, 0)
	for _, list := range s.lists {
		if list.CreatorID == creatorID {
			out = append(out, list)
		}
	}
	return out, nil
}

// GetForCreator implements store.ListStore.GetForCreator
func (s *MemoryListStore) GetForCreator(
	ctx context.Context,
	id uuid.UUID,
	creatorID string,
) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	list, ok := s.lists[id]
	if !ok || list.CreatorID != creatorID {
		return nil, store.ErrListNotFound
	}
	return &list, nil
}

// Update implements store.ListStore.Update
func (s *MemoryListStore) Update(
	ctx context.Context,
	id uuid.UUID,
	place, listType string,
) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	list, ok := s.lists[id]
	if !ok {
		return nil, store.ErrListNotFound
	}
	list.Place = place
	list.Type = listType
	s.lists[id] = list
	return &list, nil
}

// Delete implements store.ListStore.Delete
func (s *MemoryListStore) Delete(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}

	list, ok := s.lists[id]
	if !ok {
		return nil, store.ErrListNotFound
	}
	delete(s.lists, id)
	return &list, nil
}

// Get returns a snapshot of a stored list, for test assertions.
func (s *MemoryListStore) Get(id uuid.UUID) (domain.List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[id]
	return list, ok
}
