package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klepi21/barberians/internal/domain"
	bookingRepo "github.com/klepi21/barberians/internal/infra/storage/booking"
	"github.com/klepi21/barberians/internal/service/bookings/models"
	"github.com/klepi21/barberians/pkg/types"
)

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	filtered   []*domain.Booking
	lastFilter domain.BookingsFilter
	lastStatus domain.BookingStatus
	deleted    []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.filtered, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.lastStatus = status
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Barber:          "Kostas",
		Status:          status,
		Service:         "Κούρεμα",
		ServicePrice:    13.0,
		FullName:        "Νίκος Παπαδόπουλος",
		PhoneNumber:     "+306912345678",
		Email:           "nikos@example.com",
	}
}

func TestService_GetBookings(t *testing.T) {
	repo := &fakeBookingRepo{
		filtered: []*domain.Booking{
			testBooking(1, domain.StatusPending),
			testBooking(2, domain.StatusDone),
		},
	}
	svc := NewService(repo, nopLogger{})

	date := "2025-10-15"
	resp, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{Date: &date})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "2025-10-15", resp.Bookings[0].Date)
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)

	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, "2025-10-15", repo.lastFilter.Date.Format(domain.DateFormat))
	assert.False(t, repo.lastFilter.IncludeInactive)
}

func TestService_GetBookings_InvalidDate(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	bad := "15-10-2025"
	_, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{Date: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	bad := "confirmed"
	_, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.BookingStatus
		newStatus string
		wantErr   error
	}{
		{
			name:      "pending to done",
			current:   domain.StatusPending,
			newStatus: "done",
		},
		{
			name:      "pending to cancelled",
			current:   domain.StatusPending,
			newStatus: "cancelled",
		},
		{
			name:      "done is terminal",
			current:   domain.StatusDone,
			newStatus: "cancelled",
			wantErr:   ErrInvalidTransition,
		},
		{
			name:      "cancelled is terminal",
			current:   domain.StatusCancelled,
			newStatus: "done",
			wantErr:   ErrInvalidTransition,
		},
		{
			name:      "unknown status rejected",
			current:   domain.StatusPending,
			newStatus: "approved",
			wantErr:   ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{
				7: testBooking(7, tt.current),
			}}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.newStatus})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.newStatus), repo.lastStatus)
		})
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "done"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		3: testBooking(3, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, []int64{3}, repo.deleted)

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
