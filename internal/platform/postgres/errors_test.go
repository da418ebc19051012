package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jtarver/shoplist-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{
			name:    "nil stays nil",
			err:     nil,
			wantNil: true,
		},
		{
			name:   "no rows maps to not found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows maps to not found",
			err:    fmt.Errorf("query failed: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation maps to duplicate",
			err:    &pgconn.PgError{Code: uniqueViolationCode},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation maps to invalid entity",
			err:    &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "items_list_id_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation maps to invalid entity",
			err:    &pgconn.PgError{Code: notNullViolationCode, ColumnName: "name"},
			wantIs: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")
	assert.Equal(t, err, MapError(err))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsForeignKeyViolation(errors.New("other")))
}
