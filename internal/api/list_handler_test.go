package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jtarver/shoplist-api/internal/domain"
	"github.com/jtarver/shoplist-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateList(t *testing.T) {
	t.Parallel()

	lists := mocks.NewMemoryListStore()
	router := newTestRouter(lists, mocks.NewMemoryItemStore())

	recorder := doRequest(t, router, http.MethodPost, "/createList", map[string]any{
		"place":  "Home",
		"type":   "grocery",
		"userId": "u1",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp struct {
		Message string         `json:"message"`
		List    map[string]any `json:"list"`
	}
	decodeBody(t, recorder, &resp)

	assert.Equal(t, "New list created", resp.Message)
	assert.Equal(t, "Home", resp.List["place"])
	assert.Equal(t, "grocery", resp.List["type"])
	assert.Equal(t, "u1", resp.List["creatorId"], "response keys must be camelCase")
	require.Contains(t, resp.List, "listId")

	id, err := uuid.Parse(resp.List["listId"].(string))
	require.NoError(t, err)
	_, ok := lists.Get(id)
	assert.True(t, ok, "created list must be persisted")
}

func TestCreateList_GeneratedIDsAreUnique(t *testing.T) {
	t.Parallel()

	router := newTestRouter(mocks.NewMemoryListStore(), mocks.NewMemoryItemStore())
	body := map[string]any{"place": "Home", "type": "grocery", "userId": "u1"}

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		recorder := doRequest(t, router, http.MethodPost, "/createList", body)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var resp struct {
			List ListResponse `json:"list"`
		}
		decodeBody(t, recorder, &resp)
		assert.False(t, seen[resp.List.ListID], "list IDs must be unique")
		seen[resp.List.ListID] = true
	}
}

func TestGetListsByCreator(t *testing.T) {
	t.Parallel()

	lists := mocks.NewMemoryListStore()
	router := newTestRouter(lists, mocks.NewMemoryItemStore())

	t.Run("no lists is 404, not an empty array", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/nobody", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("returns only the creator's lists", func(t *testing.T) {
		require.NoError(t, lists.Create(context.Background(),
			&domain.List{Place: "Home", Type: "grocery", CreatorID: "u1"}))
		require.NoError(t, lists.Create(context.Background(),
			&domain.List{Place: "Office", Type: "supplies", CreatorID: "u2"}))

		recorder := doRequest(t, router, http.MethodGet, "/u1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp []ListResponse
		decodeBody(t, recorder, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "Home", resp[0].Place)
		assert.Equal(t, "u1", resp[0].CreatorID)
	})
}

func TestGetList(t *testing.T) {
	t.Parallel()

	lists := mocks.NewMemoryListStore()
	router := newTestRouter(lists, mocks.NewMemoryItemStore())

	owned := &domain.List{Place: "Home", Type: "grocery", CreatorID: "u1"}
	require.NoError(t, lists.Create(context.Background(), owned))

	t.Run("missing userId query is 400", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/getList/"+owned.ID.String(), nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("owner reads the list", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet,
			"/getList/"+owned.ID.String()+"?userId=u1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ListResponse
		decodeBody(t, recorder, &resp)
		assert.Equal(t, owned.ID.String(), resp.ListID)
		assert.Equal(t, "Home", resp.Place)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet,
			"/getList/"+uuid.NewString()+"?userId=u1", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("someone else's list is indistinguishable from missing", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet,
			"/getList/"+owned.ID.String()+"?userId=u2", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/getList/not-a-uuid?userId=u1", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUpdateList(t *testing.T) {
	t.Parallel()

	lists := mocks.NewMemoryListStore()
	router := newTestRouter(lists, mocks.NewMemoryItemStore())

	list := &domain.List{Place: "Home", Type: "grocery", CreatorID: "u1"}
	require.NoError(t, lists.Create(context.Background(), list))

	t.Run("overwrites both fields", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPut, "/updateList/"+list.ID.String(),
			map[string]any{"place": "Market", "type": "weekly"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ListResponse
		decodeBody(t, recorder, &resp)
		assert.Equal(t, "Market", resp.Place)
		assert.Equal(t, "weekly", resp.Type)
		assert.Equal(t, "u1", resp.CreatorID, "creator is not touched by updates")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPut, "/updateList/"+uuid.NewString(),
			map[string]any{"place": "X", "type": "Y"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteList(t *testing.T) {
	t.Parallel()

	lists := mocks.NewMemoryListStore()
	router := newTestRouter(lists, mocks.NewMemoryItemStore())

	list := &domain.List{Place: "Home", Type: "grocery", CreatorID: "u1"}
	require.NoError(t, lists.Create(context.Background(), list))

	recorder := doRequest(t, router, http.MethodDelete, "/deleteList/"+list.ID.String(), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Message string       `json:"message"`
		List    ListResponse `json:"list"`
	}
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "List deleted successfully", resp.Message)
	assert.Equal(t, list.ID.String(), resp.List.ListID, "deleted entity is keyed as 'list'")

	// Deleting again is 404, not 500.
	recorder = doRequest(t, router, http.MethodDelete, "/deleteList/"+list.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListHandler_StoreFailureIsGeneric500(t *testing.T) {
	t.Parallel()

	lists := mocks.NewMemoryListStore()
	lists.ForcedErr = errors.New("pq: connection refused to host db.internal:5432")
	router := newTestRouter(lists, mocks.NewMemoryItemStore())

	recorder := doRequest(t, router, http.MethodPost, "/createList",
		map[string]any{"place": "Home", "type": "grocery", "userId": "u1"})

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "db.internal",
		"store errors must not leak to clients")
}
