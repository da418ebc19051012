package domain

import "github.com/google/uuid"

// Item is a line entry belonging to exactly one list.
// Size is optional and maps to a nullable column.
type Item struct {
	ID     uuid.UUID
	ListID uuid.UUID
	Name   string
	Type   string
	Size   *string
	Amount int
	Price  float64
}

// ItemPatch carries a partial update for an item. A nil field means
// "leave unchanged". The zero value is an empty patch.
type ItemPatch struct {
	Name   *string
	Type   *string
	Size   *string
	Amount *int
	Price  *float64
}

// IsEmpty reports whether the patch would change nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Size == nil && p.Amount == nil && p.Price == nil
}
