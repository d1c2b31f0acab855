package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking routes; submissions require auth
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
	})

	return r
}
