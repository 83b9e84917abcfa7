package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klepi21/barberians/internal/availability"
	"github.com/klepi21/barberians/internal/domain"
	bookingRepo "github.com/klepi21/barberians/internal/infra/storage/booking"
	"github.com/klepi21/barberians/internal/integrations/mailer"
	"github.com/klepi21/barberians/pkg/types"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	mailerClient MailerClient
	txManager    TransactionManager
	barbers      []string
	services     []domain.Service
	shopName     string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	barbers []string,
	services []domain.Service,
	shopName string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		mailerClient: mailerClient,
		txManager:    txManager,
		barbers:      barbers,
		services:     services,
		shopName:     shopName,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции,
// выборка бронирований на дату идет с блокировкой FOR UPDATE. Частичный
// уникальный индекс по (date, start_time, barber) среди неотмененных записей
// остается вторым рубежом: проигравший гонку писатель получает
// ErrSlotNotAvailable, а не тихую двойную запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%q, barber=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Service, req.Barber)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга из прайс-листа задает длительность и цену
	service, err := findService(uc.services, req.Service)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown service %q", req.Service)
		return nil, err
	}

	// 3. Желаемый барбер обязан быть в ростере
	if req.Barber != nil {
		if err := validateBarber(uc.barbers, *req.Barber); err != nil {
			uc.logger.Warn("CreateBooking: unknown barber %q", *req.Barber)
			return nil, err
		}
	}

	now := uc.timeProvider.Now()

	// 4. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	var result *domain.Booking

	// 5. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cfg, err := uc.scheduleRepo.LoadConfig(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load schedule config: %v", err)
			return fmt.Errorf("%w: failed to load schedule config: %v", ErrStoreUnavailable, err)
		}

		// Внутри транзакции выборка по дате блокирует строки (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{Date: &req.Date})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
		}

		covered, err := uc.checkSlotOnGrid(req, service, cfg, now)
		if err != nil {
			return err
		}

		barber, err := uc.pickBarber(req, covered, bookings)
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Barber:          barber,
			Status:          domain.StatusPending,
			Service:         service.Name,
			ServicePrice:    service.Price,
			FullName:        req.FullName,
			PhoneNumber:     req.PhoneNumber,
			Email:           req.Email,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost the race for %s %s barber=%s",
					req.Date.Format(domain.DateFormat), req.StartTime, barber)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, barber=%s", result.ID, result.Barber)

	// 6. Письмо-подтверждение после коммита; любая ошибка некритична
	uc.sendConfirmation(ctx, result)

	return toResponse(result), nil
}

// checkSlotOnGrid проверяет, что запрошенное время лежит на сетке слотов
// открытого дня и все слоты, накрытые длительностью услуги, существуют:
// не в перерыве, не за закрытием и не в прошедшей части сегодняшнего дня.
// Возвращает список накрытых слотов.
func (uc *UseCase) checkSlotOnGrid(req *Request, service domain.Service, cfg domain.ScheduleConfig, now time.Time) ([]types.TimeString, error) {
	window, _, err := availability.ResolveWindow(req.Date, cfg)
	if err != nil {
		if errors.Is(err, availability.ErrConfigParse) {
			uc.logger.Error("CreateBooking: malformed weekly hours for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleConfig, err)
		}
		return nil, fmt.Errorf("%w: failed to resolve window: %v", ErrInternal, err)
	}
	if window.Closed {
		uc.logger.Warn("CreateBooking: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrShopClosed
	}

	// Сетка без учета занятости: слоты пустого дня
	gridSlots, rowErrs, err := availability.ComputeAvailableSlots(req.Date, uc.barbers, cfg, nil, now)
	if err != nil {
		if errors.Is(err, availability.ErrConfigParse) {
			return nil, fmt.Errorf("%w: %v", ErrScheduleConfig, err)
		}
		return nil, fmt.Errorf("%w: failed to compute slot grid: %v", ErrInternal, err)
	}
	for _, rowErr := range rowErrs {
		uc.logger.Warn("CreateBooking: %v", rowErr)
	}

	onGrid := make(map[types.TimeString]bool, len(gridSlots))
	for _, slot := range gridSlots {
		onGrid[slot.StartTime] = true
	}

	// Длительность услуги накрывает подряд идущие слоты сетки
	span := (service.DurationMinutes + domain.SlotIntervalMinutes - 1) / domain.SlotIntervalMinutes
	if span < 1 {
		span = 1
	}

	covered := make([]types.TimeString, 0, span)
	cur := req.StartTime
	for i := 0; i < span; i++ {
		if !onGrid[cur] {
			uc.logger.Warn("CreateBooking: slot %s is not bookable on %s",
				cur, req.Date.Format(domain.DateFormat))
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, cur)
		}
		covered = append(covered, cur)

		next, err := cur.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			if i < span-1 {
				return nil, fmt.Errorf("%w: service does not fit before midnight", ErrInvalidTimeSlot)
			}
			break
		}
		cur = next
	}

	return covered, nil
}

// pickBarber выбирает барбера, свободного на всех накрытых слотах.
// Желаемый барбер имеет приоритет; иначе берется первый свободный из ростера.
func (uc *UseCase) pickBarber(req *Request, covered []types.TimeString, bookings []*domain.Booking) (string, error) {
	candidates := uc.barbers
	for _, slot := range covered {
		free := availability.FreeBarbers(req.Date, slot, uc.barbers, bookings)
		candidates = intersect(candidates, free)
	}

	if len(candidates) == 0 {
		uc.logger.Warn("CreateBooking: no free barber for %s %s",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return "", ErrSlotNotAvailable
	}

	if req.Barber != nil {
		for _, candidate := range candidates {
			if candidate == *req.Barber {
				return candidate, nil
			}
		}
		uc.logger.Warn("CreateBooking: barber %q is busy at %s %s",
			*req.Barber, req.Date.Format(domain.DateFormat), req.StartTime)
		return "", ErrSlotNotAvailable
	}

	return candidates[0], nil
}

// sendConfirmation отправляет письмо-подтверждение; ошибки только логируются
func (uc *UseCase) sendConfirmation(ctx context.Context, b *domain.Booking) {
	err := uc.mailerClient.SendBookingConfirmation(ctx, mailer.BookingConfirmation{
		BookingID: b.ID,
		FullName:  b.FullName,
		Email:     b.Email,
		Date:      b.Date,
		StartTime: b.StartTime,
		Barber:    b.Barber,
		Service:   b.Service,
		Price:     b.ServicePrice,
		ShopName:  uc.shopName,
	})
	if err != nil && !errors.Is(err, mailer.ErrDisabled) {
		uc.logger.Warn("CreateBooking: confirmation email for booking id=%d not sent: %v", b.ID, err)
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Barber:          b.Barber,
		Status:          string(b.Status),
		Service:         b.Service,
		ServicePrice:    b.ServicePrice,
		FullName:        b.FullName,
		PhoneNumber:     b.PhoneNumber,
		Email:           b.Email,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
