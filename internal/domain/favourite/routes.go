package favourite

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns favourite routes, all behind auth
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/{id}", h.Remove)

	return r
}
