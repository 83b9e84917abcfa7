package get_breaks

import (
	"net/http"
	"strconv"

	"github.com/klepi21/barberians/internal/api/handlers"
	"github.com/klepi21/barberians/internal/service/schedule/models"
)

const (
	msgInvalidDay = "μη έγκυρη ημέρα εβδομάδας, αναμένεται 1 (Δευτέρα) έως 7 (Κυριακή)"
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

// Handle GET /api/v1/admin/schedule/breaks?day=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBreaks(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/schedule/breaks - Failed to get breaks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if dayStr := r.URL.Query().Get("day"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			h.logger.Warn("GET /admin/schedule/breaks - Invalid day=%q", dayStr)
			handlers.RespondBadRequest(w, msgInvalidDay)
			return
		}

		filtered := &models.BreakListResponse{Breaks: make([]models.BreakResponse, 0)}
		for _, br := range result.Breaks {
			if br.Weekday == day {
				filtered.Breaks = append(filtered.Breaks, br)
			}
		}
		result = filtered
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
