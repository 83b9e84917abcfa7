package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
	getAvailableSlots "github.com/klepi21/barberians/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "η ημερομηνία είναι υποχρεωτική"
	msgInvalidDate      = "μη έγκυρη μορφή ημερομηνίας, αναμένεται YYYY-MM-DD"
	msgScheduleBroken   = "το ωράριο του καταστήματος είναι εσφαλμένα ρυθμισμένο"
	msgStoreUnavailable = "η υπηρεσία δεν είναι προσωρινά διαθέσιμη, δοκιμάστε ξανά"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput), errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Invalid request: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrScheduleConfig):
			// Кривая конфигурация - это 500, а не пустой список: иначе
			// опечатка админа молча закрывает магазин
			h.logger.Error("GET /available-slots - Malformed schedule config: date=%s, error=%v", dateStr, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgScheduleBroken)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /available-slots - Store unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
