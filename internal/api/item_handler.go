package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/api/shared"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/platform/logger"
	"github.com/jtarver/shoplist-api/internal/store"
)

// ItemHandler handles item-related HTTP requests. Items are addressed by
// bare ID; no route checks that the caller owns the parent list.
type ItemHandler struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemStore store.ItemStore, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemHandler")
	}

	return &ItemHandler{
		itemStore: itemStore,
		logger:    logger.With(slog.String("component", "item_handler")),
	}
}

// CreateItemRequest is the request body for creating an item. All fields
// are supplied at once; size may be null.
type CreateItemRequest struct {
	ListID string  `json:"listId"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Size   *string `json:"size"`
	Amount int     `json:"amount"`
	Price  float64 `json:"price"`
}

// UpdateItemRequest is the request body for a partial item update. Absent
// fields stay untouched; at least one field must be present.
type UpdateItemRequest struct {
	Name   *string  `json:"name"`
	Type   *string  `json:"type"`
	Size   *string  `json:"size"`
	Amount *int     `json:"amount"`
	Price  *float64 `json:"price"`
}

// CreateItem handles POST /createItem requests. The list reference is not
// checked here; if the database enforces the foreign key, a dangling listId
// surfaces as a generic 500.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid listId format")
		return
	}

	item := &domain.Item{
		ListID: listID,
		Name:   req.Name,
		Type:   req.Type,
		Size:   req.Size,
		Amount: req.Amount,
		Price:  req.Price,
	}
	if err := h.itemStore.Create(r.Context(), item); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error processing item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, createdItemResponse{
		Message: "New item created",
		Item:    itemToResponse(item),
	})
}

// GetItemsByList handles GET /getItems/{listId} requests.
// Unlike the lists-by-creator route, an empty result is a 200 with an
// empty array.
func (h *ItemHandler) GetItemsByList(w http.ResponseWriter, r *http.Request) {
	listID, err := getPathUUID(r, "listId")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	items, err := h.itemStore.GetByList(r.Context(), listID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error fetching items", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// GetItem handles GET /getItem/{itemId} requests.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "itemId")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	item, err := h.itemStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Item not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error fetching item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// IncreaseAmount handles PUT /increase/{itemId} requests.
func (h *ItemHandler) IncreaseAmount(w http.ResponseWriter, r *http.Request) {
	h.adjustAmount(w, r, +1)
}

// DecreaseAmount handles PUT /decrease/{itemId} requests. There is no floor:
// decrementing an item at zero drives the amount negative.
func (h *ItemHandler) DecreaseAmount(w http.ResponseWriter, r *http.Request) {
	h.adjustAmount(w, r, -1)
}

func (h *ItemHandler) adjustAmount(w http.ResponseWriter, r *http.Request, delta int) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "itemId")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	item, err := h.itemStore.AdjustAmount(r.Context(), id, delta)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				"Item not found or you are not authorized to modify this item")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error updating item amount", err)
		return
	}

	log.Debug("item amount adjusted",
		slog.String("item_id", id.String()),
		slog.Int("delta", delta),
		slog.Int("amount", item.Amount))
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// UpdateItem handles PUT /updateItem/{id} requests. Only the supplied
// fields are written; an empty body is a 400 and performs no mutation.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch := domain.ItemPatch{
		Name:   req.Name,
		Type:   req.Type,
		Size:   req.Size,
		Amount: req.Amount,
		Price:  req.Price,
	}
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No fields provided for update")
		return
	}

	item, err := h.itemStore.Update(r.Context(), id, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Item not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error updating item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /deleteItem/{id} requests.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	item, err := h.itemStore.Delete(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Item not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error deleting item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deletedItemResponse{
		Message: "Item deleted successfully",
		Item:    itemToResponse(item),
	})
}
