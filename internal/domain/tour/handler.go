package tour

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain/favourite"
	"github.com/roamio/roamio-api/internal/middleware"
	"github.com/roamio/roamio-api/internal/pkg/logger"
	"github.com/roamio/roamio-api/internal/pkg/response"
)

// FavouriteSource resolves a user's favourite tour ids for the
// favourites-only filter
type FavouriteSource interface {
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Handler handles catalog HTTP requests
type Handler struct {
	service    *Service
	favourites FavouriteSource
}

// NewHandler creates tour handler
func NewHandler(service *Service, favourites FavouriteSource) *Handler {
	return &Handler{service: service, favourites: favourites}
}

// Search handles GET /tours
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	f, err := h.filterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.Search(r.Context(), f)
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Msg("Catalog search failed")
		response.InternalError(w)
		return
	}

	items := make([]*SummaryResponse, len(result.Tours))
	for i, t := range result.Tours {
		items[i] = SummaryResponseFromEntity(t)
	}

	response.WithMeta(w, items, response.Meta{
		Total:   result.Total,
		Page:    result.Page,
		Limit:   PageSize,
		Pages:   result.TotalPages,
		HasNext: result.Page < result.TotalPages-1,
		HasPrev: result.Page > 0 && result.Total > 0,
	})
}

// GetByID handles GET /tours/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid tour id")
		return
	}

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrTourNotFound {
			response.NotFound(w, "Tour not found")
			return
		}
		logger.FromContext(r.Context()).Error().Err(err).Str("tour_id", id.String()).Msg("Tour lookup failed")
		response.InternalError(w)
		return
	}

	response.OK(w, DetailResponseFromEntity(t))
}

func (h *Handler) filterFromQuery(r *http.Request) (FilterState, error) {
	q := r.URL.Query()
	f := NewFilterState()

	f.Query = q.Get("q")
	f.Durations = q["duration"]

	if v := q.Get("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidParam("minPrice")
		}
		f.PriceMin = min
	}
	if v := q.Get("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidParam("maxPrice")
		}
		f.PriceMax = max
	}
	if v := q.Get("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidParam("minRating")
		}
		f.MinRating = rating
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return f, errInvalidParam("page")
		}
		f.Page = page
	}

	if q.Get("favouritesOnly") == "true" {
		f.FavouritesOnly = true

		// Anonymous callers have no favourites: the gate yields zero results
		var ids []uuid.UUID
		userID := middleware.GetUserID(r.Context())
		if userID != uuid.Nil {
			var err error
			ids, err = h.favourites.ListIDs(r.Context(), userID)
			if err != nil {
				logger.FromContext(r.Context()).Warn().Err(err).Msg("Favourite lookup failed, treating as empty")
				ids = nil
			}
		}
		f.FavouriteIDs = favourite.IDSet(ids)
	}

	return f, nil
}

type paramError string

func errInvalidParam(name string) error { return paramError(name) }

func (e paramError) Error() string { return "Invalid query parameter: " + string(e) }
