package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestBuildItemUpdate(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name      string
		patch     domain.ItemPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "single field",
			patch:     domain.ItemPatch{Price: floatPtr(4.0)},
			wantQuery: "UPDATE items SET price = $1 WHERE item_id = $2 RETURNING " + itemColumns,
			wantArgs:  []any{4.0, id},
		},
		{
			name:  "all fields in declaration order",
			patch: domain.ItemPatch{
				Name:   strPtr("Milk"),
				Type:   strPtr("dairy"),
				Size:   strPtr("1L"),
				Amount: intPtr(2),
				Price:  floatPtr(3.5),
			},
			wantQuery: "UPDATE items SET name = $1, type = $2, size = $3, amount = $4, price = $5 " +
				"WHERE item_id = $6 RETURNING " + itemColumns,
			wantArgs: []any{"Milk", "dairy", "1L", 2, 3.5, id},
		},
		{
			name:      "subset keeps placeholder numbering dense",
			patch:     domain.ItemPatch{Type: strPtr("bakery"), Amount: intPtr(7)},
			wantQuery: "UPDATE items SET type = $1, amount = $2 WHERE item_id = $3 RETURNING " + itemColumns,
			wantArgs:  []any{"bakery", 7, id},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildItemUpdate(id, tt.patch)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildItemUpdate_IDAlwaysLast(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	query, args := buildItemUpdate(id, domain.ItemPatch{Name: strPtr("Bread")})

	require.NotEmpty(t, args)
	assert.Equal(t, id, args[len(args)-1])
	assert.Contains(t, query, "WHERE item_id = $2")
}
