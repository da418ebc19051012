package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/platform/logger"
	"github.com/jtarver/shoplist-api/internal/store"
)

const itemColumns = "item_id, list_id, name, type, size, amount, price"

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, the
// default logger is used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

func scanItem(row *sql.Row, item *domain.Item) error {
	return row.Scan(
		&item.ID,
		&item.ListID,
		&item.Name,
		&item.Type,
		&item.Size,
		&item.Amount,
		&item.Price,
	)
}

// Create implements store.ItemStore.Create
// The list reference is not checked up front; a dangling list_id surfaces
// as a foreign key violation from the database.
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	query := `
		INSERT INTO items (item_id, list_id, name, type, size, amount, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + itemColumns
	err := scanItem(
		s.db.QueryRowContext(ctx, query,
			item.ID, item.ListID, item.Name, item.Type, item.Size, item.Amount, item.Price),
		item,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during item creation",
				slog.String("item_id", item.ID.String()),
				slog.String("list_id", item.ListID.String()))
		} else {
			log.Error("failed to create item",
				slog.String("error", err.Error()),
				slog.String("item_id", item.ID.String()))
		}
		return MapError(err)
	}

	log.Debug("item created",
		slog.String("item_id", item.ID.String()),
		slog.String("list_id", item.ListID.String()))
	return nil
}

// GetByList implements store.ItemStore.GetByList
func (s *PostgresItemStore) GetByList(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + itemColumns + ` FROM items WHERE list_id = $1`
	rows, err := s.db.QueryContext(ctx, query, listID)
	if err != nil {
		log.Error("failed to query items by list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		err := rows.Scan(
			&item.ID, &item.ListID, &item.Name, &item.Type,
			&item.Size, &item.Amount, &item.Price,
		)
		if err != nil {
			return nil, MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// GetByID implements store.ItemStore.GetByID
func (s *PostgresItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`
	var item domain.Item
	if err := scanItem(s.db.QueryRowContext(ctx, query, id), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.String("item_id", id.String()))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, MapError(err)
	}

	return &item, nil
}

// AdjustAmount implements store.ItemStore.AdjustAmount
// The addition happens inside the UPDATE statement, so concurrent calls on
// the same row serialize at the database and none of them loses an update.
// Amount is not clamped; decrementing past zero goes negative.
func (s *PostgresItemStore) AdjustAmount(
	ctx context.Context,
	id uuid.UUID,
	delta int,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE items
		SET amount = amount + $1
		WHERE item_id = $2
		RETURNING ` + itemColumns
	var item domain.Item
	if err := scanItem(s.db.QueryRowContext(ctx, query, delta, id), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for amount adjustment", slog.String("item_id", id.String()))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to adjust item amount",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	return &item, nil
}

// buildItemUpdate assembles the dynamic UPDATE statement for a partial item
// update. Only fields present in the patch are included in the SET clause;
// placeholders are numbered in field order with the item ID last.
func buildItemUpdate(id uuid.UUID, patch domain.ItemPatch) (string, []any) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Size != nil {
		add("size", *patch.Size)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}

	query := fmt.Sprintf(
		"UPDATE items SET %s WHERE item_id = $%d RETURNING %s",
		strings.Join(set, ", "),
		len(args)+1,
		itemColumns,
	)
	args = append(args, id)

	return query, args
}

// Update implements store.ItemStore.Update
func (s *PostgresItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.ItemPatch,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}

	query, args := buildItemUpdate(id, patch)

	var item domain.Item
	if err := scanItem(s.db.QueryRowContext(ctx, query, args...), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for update", slog.String("item_id", id.String()))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to update item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, MapError(err)
	}

	return &item, nil
}

// Delete implements store.ItemStore.Delete
func (s *PostgresItemStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM items WHERE item_id = $1 RETURNING ` + itemColumns
	var item domain.Item
	if err := scanItem(s.db.QueryRowContext(ctx, query, id), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for delete", slog.String("item_id", id.String()))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("item deleted", slog.String("item_id", id.String()))
	return &item, nil
}
