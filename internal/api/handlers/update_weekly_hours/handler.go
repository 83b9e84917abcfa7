package update_weekly_hours

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
	msgDuplicateWeekday   = "η ίδια ημέρα εβδομάδας εμφανίζεται δύο φορές"
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

// Handle PUT /api/v1/admin/schedule/weekly
// Тело запроса заменяет недельное расписание целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateWeeklyHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/weekly - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeeklyHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidWeekday):
			h.logger.Warn("PUT /admin/schedule/weekly - Invalid weekday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, scheduleService.ErrDuplicateWeekday):
			h.logger.Warn("PUT /admin/schedule/weekly - Duplicate weekday: %v", err)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/schedule/weekly - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("PUT /admin/schedule/weekly - Failed to update weekly hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/weekly - Weekly hours replaced with %d entries", len(result.Hours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
