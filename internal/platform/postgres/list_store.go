package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/platform/logger"
	"github.com/jtarver/shoplist-api/internal/store"
)

// PostgresListStore implements the store.ListStore interface
// using a PostgreSQL database as the storage backend.
type PostgresListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresListStore creates a new PostgreSQL implementation of the
// ListStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, the
// default logger is used.
func NewPostgresListStore(db store.DBTX, logger *slog.Logger) *PostgresListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresListStore{
		db:     db,
		logger: logger.With(slog.String("component", "list_store")),
	}
}

// Ensure PostgresListStore implements store.ListStore interface
var _ store.ListStore = (*PostgresListStore)(nil)

// Create implements store.ListStore.Create
func (s *PostgresListStore) Create(ctx context.Context, list *domain.List) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}

	query := `
		INSERT INTO lists (list_id, place, type, creator_id)
		VALUES ($1, $2, $3, $4)
		RETURNING list_id, place, type, creator_id
	`
	err := s.db.QueryRowContext(ctx, query, list.ID, list.Place, list.Type, list.CreatorID).
		Scan(&list.ID, &list.Place, &list.Type, &list.CreatorID)
	if err != nil {
		log.Error("failed to create list",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return MapError(err)
	}

	log.Debug("list created",
		slog.String("list_id", list.ID.String()),
		slog.String("creator_id", list.CreatorID))
	return nil
}

// GetByCreator implements store.ListStore.GetByCreator
func (s *PostgresListStore) GetByCreator(ctx context.Context, creatorID string) ([]domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT list_id, place, type, creator_id
		FROM lists
		WHERE creator_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		log.Error("failed to query lists by creator",
			slog.String("error", err.Error()),
			slog.String("creator_id", creatorID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	lists := make([]domain.List, 0)
	for rows.Next() {
		var list domain.List
		if err := rows.Scan(&list.ID, &list.Place, &list.Type, &list.CreatorID); err != nil {
			return nil, MapError(err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return lists, nil
}

// GetForCreator implements store.ListStore.GetForCreator
// The lookup is scoped by both ID and creator in a single statement, so a
// list owned by someone else is indistinguishable from a missing one.
func (s *PostgresListStore) GetForCreator(
	ctx context.Context,
	id uuid.UUID,
	creatorID string,
) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT list_id, place, type, creator_id
		FROM lists
		WHERE list_id = $1 AND creator_id = $2
	`
	var list domain.List
	err := s.db.QueryRowContext(ctx, query, id, creatorID).
		Scan(&list.ID, &list.Place, &list.Type, &list.CreatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("list not found for creator",
				slog.String("list_id", id.String()),
				slog.String("creator_id", creatorID))
			return nil, store.ErrListNotFound
		}
		log.Error("failed to get list",
			slog.String("error", err.Error()),
			slog.String("list_id", id.String()))
		return nil, MapError(err)
	}

	return &list, nil
}

// Update implements store.ListStore.Update
func (s *PostgresListStore) Update(
	ctx context.Context,
	id uuid.UUID,
	place, listType string,
) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE lists
		SET place = $1, type = $2
		WHERE list_id = $3
		RETURNING list_id, place, type, creator_id
	`
	var list domain.List
	err := s.db.QueryRowContext(ctx, query, place, listType, id).
		Scan(&list.ID, &list.Place, &list.Type, &list.CreatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("list not found for update", slog.String("list_id", id.String()))
			return nil, store.ErrListNotFound
		}
		log.Error("failed to update list",
			slog.String("error", err.Error()),
			slog.String("list_id", id.String()))
		return nil, MapError(err)
	}

	return &list, nil
}

// Delete implements store.ListStore.Delete
// Items referencing the list are not touched; whether the delete is allowed
// with items still attached is up to the schema's foreign key definition.
func (s *PostgresListStore) Delete(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM lists
		WHERE list_id = $1
		RETURNING list_id, place, type, creator_id
	`
	var list domain.List
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&list.ID, &list.Place, &list.Type, &list.CreatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("list not found for delete", slog.String("list_id", id.String()))
			return nil, store.ErrListNotFound
		}
		log.Error("failed to delete list",
			slog.String("error", err.Error()),
			slog.String("list_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("list deleted", slog.String("list_id", id.String()))
	return &list, nil
}
