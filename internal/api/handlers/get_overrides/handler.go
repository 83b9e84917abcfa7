package get_overrides

import (
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
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

// Handle GET /api/v1/admin/schedule/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetOverrides(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/schedule/overrides - Failed to get overrides: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
