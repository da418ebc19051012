// Package api provides the HTTP handlers for the shopping list API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jtarver/shoplist-api/internal/api/shared"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/platform/logger"
	"github.com/jtarver/shoplist-api/internal/store"
)

// ListHandler handles list-related HTTP requests. Every operation is a
// single store round trip; there is no business logic between the request
// contract and the statement.
type ListHandler struct {
	listStore store.ListStore
	logger    *slog.Logger
}

// NewListHandler creates a new ListHandler.
func NewListHandler(listStore store.ListStore, logger *slog.Logger) *ListHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ListHandler")
	}

	return &ListHandler{
		listStore: listStore,
		logger:    logger.With(slog.String("component", "list_handler")),
	}
}

// CreateListRequest is the request body for creating a list. Field values
// are stored as supplied; there is no server-side validation of content.
type CreateListRequest struct {
	Place  string `json:"place"`
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// UpdateListRequest is the request body for updating a list. Both fields
// are always written; lists have no partial update.
type UpdateListRequest struct {
	Place string `json:"place"`
	Type  string `json:"type"`
}

// CreateList handles POST /createList requests.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	list := &domain.List{
		Place:     req.Place,
		Type:      req.Type,
		CreatorID: req.UserID,
	}
	if err := h.listStore.Create(r.Context(), list); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error processing list", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, createdListResponse{
		Message: "New list created",
		List:    listToResponse(list),
	})
}

// GetListsByCreator handles GET /{userId} requests.
// Zero lists is reported as 404, not an empty array. That asymmetry with
// the items route is the service's observed contract and clients depend
// on it.
func (h *ListHandler) GetListsByCreator(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	creatorID := chi.URLParam(r, "userId")

	lists, err := h.listStore.GetByCreator(r.Context(), creatorID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error fetching lists", err)
		return
	}

	if len(lists) == 0 {
		log.Debug("no lists for creator", slog.String("creator_id", creatorID))
		shared.RespondWithError(w, r, http.StatusNotFound, "No lists in database")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listsToResponse(lists))
}

// GetList handles GET /getList/{id}?userId= requests. The userId query
// parameter is required and scopes the lookup to the owning creator, so a
// list belonging to someone else reads as not found.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	creatorID := r.URL.Query().Get("userId")
	if creatorID == "" {
		log.Debug("missing userId query parameter", slog.String("list_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID is required")
		return
	}

	list, err := h.listStore.GetForCreator(r.Context(), id, creatorID)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				"List not found or you are not authorized to view this list")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error fetching list", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(list))
}

// UpdateList handles PUT /updateList/{id} requests.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	var req UpdateListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, err := h.listStore.Update(r.Context(), id, req.Place, req.Type)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "List not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error updating list", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(list))
}

// DeleteList handles DELETE /deleteList/{id} requests. Items belonging to
// the list are not deleted.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	list, err := h.listStore.Delete(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "List not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error deleting list", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deletedListResponse{
		Message: "List deleted successfully",
		List:    listToResponse(list),
	})
}
