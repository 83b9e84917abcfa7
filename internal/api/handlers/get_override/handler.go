package get_override

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

// Handle GET /api/v1/admin/schedule/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	result, err := h.service.GetOverride(r.Context(), dateStr)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("GET /admin/schedule/overrides/{date} - Invalid date=%q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, scheduleService.ErrOverrideNotFound):
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("GET /admin/schedule/overrides/{date} - Failed to get override: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
