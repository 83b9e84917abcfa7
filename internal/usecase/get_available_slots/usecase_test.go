package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klepi21/barberians/internal/domain"
	"github.com/klepi21/barberians/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetWithFilter(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeScheduleRepo struct {
	cfg domain.ScheduleConfig
	err error
}

func (f *fakeScheduleRepo) LoadConfig(context.Context) (domain.ScheduleConfig, error) {
	return f.cfg, f.err
}

type fixedTime struct {
	t time.Time
}

func (p fixedTime) Now() time.Time { return p.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fullWeekConfig() domain.ScheduleConfig {
	hours := make([]domain.WeeklyHours, 0, 7)
	for wd := 1; wd <= 7; wd++ {
		hours = append(hours, domain.WeeklyHours{
			Weekday:   wd,
			OpenTime:  types.TimeString("09:00"),
			CloseTime: types.TimeString("17:00"),
		})
	}
	return domain.ScheduleConfig{WeeklyHours: hours}
}

func newTestUseCase(bookings *fakeBookingRepo, schedule *fakeScheduleRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, schedule, []string{"Kostas", "Giannis"}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecute_FullOpenDay(t *testing.T) {
	// Запрос на будущую среду, никакой занятости
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[15].StartTime)
	assert.Equal(t, 2, resp.Slots[0].AvailableSpots)
	assert.Equal(t, []string{"Kostas", "Giannis"}, resp.Slots[0].FreeBarbers)
}

func TestExecute_BookingReducesCapacity(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			Date:            date,
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 30,
			Barber:          "Kostas",
			Status:          domain.StatusPending,
		},
	}}

	uc := newTestUseCase(bookings, &fakeScheduleRepo{cfg: fullWeekConfig()}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.StartTime == "10:00" {
			assert.Equal(t, 1, slot.AvailableSpots)
			assert.Equal(t, []string{"Giannis"}, slot.FreeBarbers)
			return
		}
	}
	t.Fatal("slot 10:00 not found in response")
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection refused")

	t.Run("schedule store down", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{err: dbErr}, time.Now())

		_, err := uc.Execute(context.Background(), &Request{Date: date})

		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("booking store down", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{err: dbErr}, &fakeScheduleRepo{cfg: fullWeekConfig()}, time.Now())

		_, err := uc.Execute(context.Background(), &Request{Date: date})

		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestExecute_MalformedWeeklyHours(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := domain.ScheduleConfig{WeeklyHours: []domain.WeeklyHours{
		{Weekday: 3, OpenTime: types.TimeString("garbage"), CloseTime: types.TimeString("17:00")},
	}}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: cfg}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	assert.ErrorIs(t, err, ErrScheduleConfig)
}

func TestExecute_ClosedDay(t *testing.T) {
	// Конфигурация только на понедельник, запрос на вторник
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	cfg := domain.ScheduleConfig{WeeklyHours: []domain.WeeklyHours{
		{Weekday: 1, OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("17:00")},
	}}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: cfg}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
