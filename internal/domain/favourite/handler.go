package favourite

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/middleware"
	"github.com/roamio/roamio-api/internal/pkg/logger"
	"github.com/roamio/roamio-api/internal/pkg/response"
)

// Handler handles favourite HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates favourite handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /favourites
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	ids, err := h.repo.ListIDs(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Msg("Favourite list failed")
		response.InternalError(w)
		return
	}

	refs := make([]Ref, len(ids))
	for i, id := range ids {
		refs[i] = Ref{TourID: id}
	}

	response.OK(w, refs)
}

// Add handles POST /favourites
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var ref Ref
	if err := response.DecodeJSON(r.Body, &ref); err != nil {
		response.BadRequest(w, "Favourite reference must be a tour id or an object with an id")
		return
	}

	if err := h.repo.Add(r.Context(), userID, ref.TourID); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("tour_id", ref.TourID.String()).Msg("Favourite add failed")
		response.InternalError(w)
		return
	}

	response.Created(w, ref)
}

// Remove handles DELETE /favourites/{id}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	tourID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid tour id")
		return
	}

	if err := h.repo.Remove(r.Context(), userID, tourID); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("tour_id", tourID.String()).Msg("Favourite remove failed")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
