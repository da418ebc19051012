package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jtarver/shoplist-api/internal/api"
	apiMiddleware "github.com/jtarver/shoplist-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics)

	// Open CORS policy: any origin, any method.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	listHandler := api.NewListHandler(app.listStore, app.logger)
	itemHandler := api.NewItemHandler(app.itemStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	// Protected routes. Static segments win over the {userId} wildcard in
	// chi's routing, so /getList and friends are never shadowed by it.
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

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
	})

	// Liveness endpoint, public.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
