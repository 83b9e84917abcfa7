package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klepi21/barberians/internal/domain"
	bookingRepo "github.com/klepi21/barberians/internal/infra/storage/booking"
	"github.com/klepi21/barberians/internal/integrations/mailer"
	"github.com/klepi21/barberians/pkg/ptr"
	"github.com/klepi21/barberians/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   []*domain.Booking
	createErr error
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	f.created = append(f.created, b)
	f.existing = append(f.existing, b)
	return b, nil
}

func (f *fakeBookingRepo) GetWithFilter(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeScheduleRepo struct {
	cfg domain.ScheduleConfig
	err error
}

func (f *fakeScheduleRepo) LoadConfig(context.Context) (domain.ScheduleConfig, error) {
	return f.cfg, f.err
}

type fakeMailer struct {
	sent []mailer.BookingConfirmation
	err  error
}

func (f *fakeMailer) SendBookingConfirmation(_ context.Context, conf mailer.BookingConfirmation) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, conf)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (p fixedTime) Now() time.Time { return p.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC) // среда
	testNow  = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
)

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

func testServices() []domain.Service {
	return []domain.Service{
		{Name: "Κούρεμα", Price: 13.0, DurationMinutes: 30},
		{Name: "Κούρεμα & Γένια", Price: 18.0, DurationMinutes: 60},
	}
}

func validRequest() *Request {
	return &Request{
		Date:        testDate,
		StartTime:   types.TimeString("10:00"),
		Service:     "Κούρεμα",
		FullName:    "Νίκος Παπαδόπουλος",
		PhoneNumber: "+306912345678",
		Email:       "nikos@example.com",
	}
}

func newTestUseCase(repo *fakeBookingRepo, schedule *fakeScheduleRepo, mail *fakeMailer) *UseCase {
	uc := NewUseCase(
		repo,
		schedule,
		mail,
		fakeTxManager{},
		[]string{"Kostas", "Giannis"},
		testServices(),
		"BARBERIANS CUTS ON THE ROCKS",
		nopLogger{},
	)
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	mail := &fakeMailer{}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, mail)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 13.0, resp.ServicePrice)
	// Барбер не запрошен - назначается первый свободный из ростера
	assert.Equal(t, "Kostas", resp.Barber)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, resp.ID, mail.sent[0].BookingID)
}

func TestExecute_AssignsSecondBarberWhenFirstBusy(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{
			Date:            testDate,
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 30,
			Barber:          "Kostas",
			Status:          domain.StatusPending,
		},
	}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Giannis", resp.Barber)
}

func TestExecute_RequestedBarberBusy(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{
			Date:            testDate,
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 30,
			Barber:          "Kostas",
			Status:          domain.StatusPending,
		},
	}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.Barber = ptr.Ptr("Kostas")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotFullyBooked(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{Date: testDate, StartTime: types.TimeString("10:00"), DurationMinutes: 30, Barber: "Kostas", Status: domain.StatusPending},
		{Date: testDate, StartTime: types.TimeString("10:00"), DurationMinutes: 30, Barber: "Giannis", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{Date: testDate, StartTime: types.TimeString("10:00"), DurationMinutes: 30, Barber: "Kostas", Status: domain.StatusCancelled},
		{Date: testDate, StartTime: types.TimeString("10:00"), DurationMinutes: 30, Barber: "Giannis", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Kostas", resp.Barber)
}

func TestExecute_LongServiceSpansTwoSlots(t *testing.T) {
	// Kostas занят на втором накрываемом слоте, поэтому 60-минутная услуга
	// уходит к Giannis
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{Date: testDate, StartTime: types.TimeString("10:30"), DurationMinutes: 30, Barber: "Kostas", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.Service = "Κούρεμα & Γένια"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Giannis", resp.Barber)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_LongServiceDoesNotFitBeforeClose(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.Service = "Κούρεμα & Γένια"
	req.StartTime = types.TimeString("16:30") // последний слот, второго нет

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_OffGridTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.StartTime = types.TimeString("10:15")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ClosedDay(t *testing.T) {
	cfg := domain.ScheduleConfig{WeeklyHours: []domain.WeeklyHours{
		{Weekday: 1, OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("17:00")},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: cfg}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.Service = "Μασάζ"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnknownBarber(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	req := validRequest()
	req.Barber = ptr.Ptr("Petros")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Конкурирующая вставка успела первой: БД вернула нарушение уникального
	// индекса, клиент получает тот же ответ, что и при обычной занятости
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_MailFailureIsNotFatal(t *testing.T) {
	mail := &fakeMailer{err: mailer.ErrSend}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, mail)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{err: assert.AnError}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"garbage time", func(r *Request) { r.StartTime = "25:99" }},
		{"empty name", func(r *Request) { r.FullName = "  " }},
		{"empty phone", func(r *Request) { r.PhoneNumber = "" }},
		{"email without at", func(r *Request) { r.Email = "nikos.example.com" }},
		{"empty service", func(r *Request) { r.Service = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{cfg: fullWeekConfig()}, &fakeMailer{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
