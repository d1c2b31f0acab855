package booking

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain/tour"
	"github.com/roamio/roamio-api/internal/pkg/logger"
	"github.com/roamio/roamio-api/internal/pkg/response"
	"github.com/roamio/roamio-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListSlots handles GET /tours/{id}/slots
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	tourID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid tour id")
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = AllMonths
	}
	if err := validator.ValidateVar(month, "month"); err != nil {
		response.BadRequest(w, "Invalid month filter")
		return
	}

	slots, err := h.service.VisibleSlots(r.Context(), tourID, month)
	if err != nil {
		if errors.Is(err, tour.ErrTourNotFound) {
			response.NotFound(w, "Tour not found")
			return
		}
		logger.FromContext(r.Context()).Error().Err(err).Str("tour_id", tourID.String()).Msg("Slot listing failed")
		response.InternalError(w)
		return
	}

	response.OK(w, slots)
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}

	response.Created(w, booking)
}

// writeBookingError maps flow notices to response codes. All of them are
// local to the attempted action — nothing here invalidates prior selections.
func (h *Handler) writeBookingError(w http.ResponseWriter, r *http.Request, err error) {
	var capErr *CapacityExceededError
	switch {
	case errors.Is(err, tour.ErrTourNotFound):
		response.NotFound(w, "Tour not found")
	case errors.As(err, &capErr):
		response.UnprocessableEntity(w, "CAPACITY_EXCEEDED", capErr.Error())
	case errors.Is(err, ErrSlotNotFound):
		response.UnprocessableEntity(w, "SLOT_NOT_FOUND", ErrSlotNotFound.Error())
	case errors.Is(err, ErrSlotDeparted):
		response.UnprocessableEntity(w, "SLOT_DEPARTED", ErrSlotDeparted.Error())
	case errors.Is(err, ErrSlotSoldOut):
		response.UnprocessableEntity(w, "SLOT_SOLD_OUT", ErrSlotSoldOut.Error())
	case errors.Is(err, ErrNoDateSelected):
		response.UnprocessableEntity(w, "NO_DATE_SELECTED", ErrNoDateSelected.Error())
	case errors.Is(err, ErrIncompleteGuests), errors.Is(err, ErrNoGuests):
		response.UnprocessableEntity(w, "INCOMPLETE_GUESTS", ErrIncompleteGuests.Error())
	case errors.Is(err, ErrSubmissionInFlight):
		response.Conflict(w, ErrSubmissionInFlight.Error())
	case errors.Is(err, ErrSubmissionFailed):
		logger.FromContext(r.Context()).Warn().Err(err).Msg("Reservations backend rejected booking")
		response.BadGateway(w, "The booking could not be confirmed, please try again")
	default:
		logger.FromContext(r.Context()).Error().Err(err).Msg("Booking creation failed")
		response.InternalError(w)
	}
}
