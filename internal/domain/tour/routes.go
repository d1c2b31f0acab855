package tour

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public catalog routes. optionalAuth resolves the caller
// identity when present so the favourites-only filter works; slotList is
// the departure-picker endpoint owned by the booking domain.
func (h *Handler) Routes(optionalAuth func(http.Handler) http.Handler, slotList http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/", h.Search)
	})

	r.Get("/{id}", h.GetByID)
	r.Get("/{id}/slots", slotList)

	return r
}
