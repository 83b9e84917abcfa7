package add_break

import (
	"errors"
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
	scheduleService "github.com/klepi21/barberians/internal/service/schedule"
	"github.com/klepi21/barberians/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "μη έγκυρο σώμα αιτήματος"
	msgInvalidWeekday     = "μη έγκυρη ημέρα εβδομάδας, αναμένεται 1 (Δευτέρα) έως 7 (Κυριακή)"
	msgInvalidTimeRange   = "μη έγκυρο διάστημα, η έναρξη πρέπει να προηγείται της λήξης"
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

// Handle POST /api/v1/admin/schedule/breaks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddBreakRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule/breaks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddBreak(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidWeekday):
			h.logger.Warn("POST /admin/schedule/breaks - Invalid weekday=%d", req.Weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/schedule/breaks - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("POST /admin/schedule/breaks - Failed to add break: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/schedule/breaks - Break added: id=%d, weekday=%d", result.ID, result.Weekday)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
