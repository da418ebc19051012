package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jtarver/shoplist-api/internal/store"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the handlers onto the same route shapes the server
// uses, minus the auth middleware, so chi URL parameters resolve normally.
func newTestRouter(lists store.ListStore, items store.ItemStore) http.Handler {
	r := chi.NewRouter()

	listHandler := NewListHandler(lists, slog.Default())
	itemHandler := NewItemHandler(items, slog.Default())

	r.Post("/createList", listHandler.CreateList)
	r.Get("/{userId}", listHandler.GetListsByCreator)
	r.Get("/getList/{id}", listHandler.GetList)
	r.Put("/updateList/{id}", listHandler.UpdateList)
	r.Delete("/deleteList/{id}", listHandler.DeleteList)

	r.Post("/createItem", itemHandler.CreateItem)
	r.Get("/getItems/{listId}", itemHandler.GetItemsByList)
	r.Get("/getItem/{itemId}", itemHandler.GetItem)
	r.Put("/increase/{itemId}", itemHandler.IncreaseAmount)
	r.Put("/decrease/{itemId}", itemHandler.DecreaseAmount)
	r.Put("/updateItem/{id}", itemHandler.UpdateItem)
	r.Delete("/deleteItem/{id}", itemHandler.DeleteItem)

	return r
}

// doRequest performs a request against the handler and returns the recorder.
// A non-nil body is JSON-encoded.
func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

// decodeBody decodes the recorder's JSON body into v.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), v))
}
