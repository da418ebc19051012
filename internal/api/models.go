package api

import "github.com/jtarver/shoplist-api/internal/domain"

// Response models rename the store's snake_case columns to the API's
// camelCase fields (list_id -> listId and so on). This is the only place
// the two naming conventions meet.

// ListResponse is the JSON shape of a list.
type ListResponse struct {
	ListID    string `json:"listId"`
	Place     string `json:"place"`
	Type      string `json:"type"`
	CreatorID string `json:"creatorId"`
}

// ItemResponse is the JSON shape of an item. Size is nullable.
type ItemResponse struct {
	ItemID string  `json:"itemId"`
	ListID string  `json:"listId"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Size   *string `json:"size"`
	Amount int     `json:"amount"`
	Price  float64 `json:"price"`
}

// createdListResponse wraps a created list with a confirmation message.
type createdListResponse struct {
	Message string       `json:"message"`
	List    ListResponse `json:"list"`
}

// deletedListResponse wraps a deleted list with a confirmation message.
type deletedListResponse struct {
	Message string       `json:"message"`
	List    ListResponse `json:"list"`
}

// createdItemResponse wraps a created item with a confirmation message.
type createdItemResponse struct {
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}

// deletedItemResponse wraps a deleted item with a confirmation message.
type deletedItemResponse struct {
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}

func listToResponse(list *domain.List) ListResponse {
	return ListResponse{
		ListID:    list.ID.String(),
		Place:     list.Place,
		Type:      list.Type,
		CreatorID: list.CreatorID,
	}
}

func listsToResponse(lists []domain.List) []ListResponse {
	out := make([]ListResponse, 0, len(lists))
	for i := range lists {
		out = append(out, listToResponse(&lists[i]))
	}
	return out
}

func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID: item.ID.String(),
		ListID: item.ListID.String(),
		Name:   item.Name,
		Type:   item.Type,
		Size:   item.Size,
		Amount: item.Amount,
		Price:  item.Price,
	}
}

func itemsToResponse(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, itemToResponse(&items[i]))
	}
	return out
}
