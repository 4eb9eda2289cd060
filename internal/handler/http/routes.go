package http

import (
	"net/http"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/go-chi/chi/v5"
)

// Init builds the router with the full middleware pipeline.
//
// Middleware order, outermost first:
//
//	withTraceID → withLogging → withErrorHandling → auth → routes
//
// Tracing runs first so every later stage logs with a trace id; logging
// wraps everything below it so the single per-request log line carries the
// final status, including 401s from the auth gate and 500s produced by the
// panic handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withErrorHandling)
	router.Use(h.auth)

	router.Get("/", h.root)
	router.Get("/health", h.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/auth/logout", h.logout)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.createItem)
			r.Get("/", h.listItems)
			r.Get("/owner/{owner_id}", h.listItemsByOwner)
			r.Get("/{id}", h.getItem)
			r.Put("/{id}", h.updateItem)
			r.Delete("/{id}", h.deleteItem)
		})
	})

	// Transport-level failures use the same envelope as domain errors.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusNotFound, app.MsgNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	})

	return router
}
