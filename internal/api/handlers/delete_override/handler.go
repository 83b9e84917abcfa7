package delete_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klepi21/barberians/internal/api/handlers"
	scheduleService "github.com/klepi21/barberians/internal/service/schedule"
)

const (
	msgInvalidDate      = "μη έγκυρη μορφή ημερομηνίας, αναμένεται YYYY-MM-DD"
	msgOverrideNotFound = "δεν υπάρχει εξαίρεση ωραρίου για αυτή την ημερομηνία"
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

// Handle DELETE /api/v1/admin/schedule/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	if err := h.service.DeleteOverride(r.Context(), dateStr); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/schedule/overrides/{date} - Invalid date=%q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, scheduleService.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/schedule/overrides/{date} - Override not found: date=%s", dateStr)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("DELETE /admin/schedule/overrides/{date} - Failed to delete override: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/schedule/overrides/{date} - Override removed: date=%s", dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
