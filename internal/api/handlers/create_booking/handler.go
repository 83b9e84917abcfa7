package create_booking

import (
	"errors"
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
	createBooking "github.com/klepi21/barberians/internal/usecase/create_booking"
	"github.com/klepi21/barberians/pkg/metrics"
)

const (
	msgInvalidRequestBody = "μη έγκυρο σώμα αιτήματος"
	msgInvalidDate        = "μη έγκυρη μορφή ημερομηνίας, αναμένεται YYYY-MM-DD"
	msgInvalidTime        = "μη έγκυρη μορφή ώρας, αναμένεται HH:MM"
	msgInvalidInput       = "μη έγκυρα στοιχεία κράτησης"
	msgServiceNotFound    = "η υπηρεσία δεν βρέθηκε"
	msgBarberNotFound     = "ο μπαρμπέρης δεν βρέθηκε"
	msgPastDate           = "η ημερομηνία έχει περάσει"
	msgShopClosed         = "το κατάστημα είναι κλειστό την επιλεγμένη ημερομηνία"
	msgInvalidTimeSlot    = "μη έγκυρη ώρα ραντεβού"
	msgSlotNotAvailable   = "το ραντεβού δεν είναι πλέον διαθέσιμο, επιλέξτε άλλη ώρα"
	msgScheduleBroken     = "το ωράριο του καταστήματος είναι εσφαλμένα ρυθμισμένο"
	msgStoreUnavailable   = "η υπηρεσία δεν είναι προσωρινά διαθέσιμη, δοκιμάστε ξανά"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if req.Date != "" && len(req.Date) == len("2006-01-02") {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.metrics.BookingConflicts.Inc()
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service=%q", req.Service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber=%v", req.Barber)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /bookings - Shop closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrScheduleConfig):
			h.logger.Error("POST /bookings - Malformed schedule config: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgScheduleBroken)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.BookingsCreated.Inc()
	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, time=%s, barber=%s",
		result.ID, req.Date, req.StartTime, result.Barber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
