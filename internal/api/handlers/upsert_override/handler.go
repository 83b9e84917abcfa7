package upsert_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klepi21/barberians/internal/api/handlers"
	scheduleService "github.com/klepi21/barberians/internal/service/schedule"
	"github.com/klepi21/barberians/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "μη έγκυρο σώμα αιτήματος"
	msgInvalidDate        = "μη έγκυρη μορφή ημερομηνίας, αναμένεται YYYY-MM-DD"
	msgInvalidTimeRange   = "μη έγκυρο ωράριο, η έναρξη πρέπει να προηγείται της λήξης"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/schedule/overrides/{date}
// closed=true делает день выходным; иначе openTime и closeTime обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	var req models.UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertOverride(r.Context(), dateStr, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("PUT /admin/schedule/overrides/{date} - Invalid date=%q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/schedule/overrides/{date} - Invalid time range for date=%s: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("PUT /admin/schedule/overrides/{date} - Failed to upsert override: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/overrides/{date} - Override set: date=%s, closed=%v", dateStr, result.Closed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
