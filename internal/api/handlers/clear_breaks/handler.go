package clear_breaks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/klepi21/barberians/internal/api/handlers"
	scheduleService "github.com/klepi21/barberians/internal/service/schedule"
)

const (
	msgInvalidWeekday = "μη έγκυρη ημέρα εβδομάδας, αναμένεται 1 (Δευτέρα) έως 7 (Κυριακή)"
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

// Handle DELETE /api/v1/admin/schedule/breaks/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		h.logger.Warn("DELETE /admin/schedule/breaks/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	result, err := h.service.ClearBreaks(r.Context(), weekday)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidWeekday) {
			h.logger.Warn("DELETE /admin/schedule/breaks/{weekday} - Invalid weekday=%d", weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)
			return
		}

		h.logger.Error("DELETE /admin/schedule/breaks/{weekday} - Failed to clear breaks: weekday=%d, error=%v", weekday, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/schedule/breaks/{weekday} - Cleared %d breaks for weekday=%d", result.Deleted, weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
