package get_bookings

import (
	"errors"
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
	bookingsService "github.com/klepi21/barberians/internal/service/bookings"
	"github.com/klepi21/barberians/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "μη έγκυρα φίλτρα αναζήτησης"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: date, startDate, endDate, status, barber, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.GetBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("startDate"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("endDate"); v != "" {
		req.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("barber"); v != "" {
		req.Barber = &v
	}

	result, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}

		h.logger.Error("GET /admin/bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Retrieved %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
