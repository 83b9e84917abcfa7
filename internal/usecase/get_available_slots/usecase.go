package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/klepi21/barberians/internal/availability"
	"github.com/klepi21/barberians/internal/domain"
)

// UseCase use case получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	barbers      []string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	barbers []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		barbers:      barbers,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Любая ошибка хранилища превращается в ErrStoreUnavailable: в этой ситуации
// занятость неизвестна, и единственный безопасный ответ - отказ, а не
// оптимистичный пустой или полный список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время - только из провайдера
	now := uc.timeProvider.Now()

	// 3. Снимок конфигурации расписания
	cfg, err := uc.scheduleRepo.LoadConfig(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule config: %v", ErrStoreUnavailable, err)
	}

	// 4. Активные бронирования на дату
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
	}

	// 5. Чистый расчет доступности
	slots, rowErrs, err := availability.ComputeAvailableSlots(req.Date, uc.barbers, cfg, bookings, now)
	if err != nil {
		if errors.Is(err, availability.ErrConfigParse) {
			uc.logger.Error("GetAvailableSlots: malformed weekly hours for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleConfig, err)
		}
		uc.logger.Error("GetAvailableSlots: availability computation failed: %v", err)
		return nil, fmt.Errorf("%w: availability computation failed: %v", ErrInternal, err)
	}

	// Битые строки конфигурации исключаются из расчета по одной,
	// но каждая попадает в лог для админа
	for _, rowErr := range rowErrs {
		uc.logger.Warn("GetAvailableSlots: %v", rowErr)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: toSlots(slots),
	}, nil
}

func toSlots(slots []domain.AvailableSlot) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			AvailableSpots:  s.AvailableSpots,
			TotalSpots:      s.TotalSpots,
			FreeBarbers:     s.FreeBarbers,
		})
	}
	return result
}
