package domain

import (
	"time"

	"github.com/klepi21/barberians/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusDone      BookingStatus = "done"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a barbershop appointment
type Booking struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Barber          string
	Status          BookingStatus

	// Denormalized service data at the moment of booking
	Service      string
	ServicePrice float64

	// Customer contact details
	FullName    string
	PhoneNumber string
	Email       string

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot.
// A cancelled booking frees its slot retroactively.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// SpanSlots returns how many consecutive grid slots the booking reserves.
// A zero or negative duration still reserves one slot.
func (b *Booking) SpanSlots() int {
	if b.DurationMinutes <= SlotIntervalMinutes {
		return 1
	}
	span := b.DurationMinutes / SlotIntervalMinutes
	if b.DurationMinutes%SlotIntervalMinutes != 0 {
		span++
	}
	return span
}

// CanTransitionTo reports whether the status transition is allowed.
// Creation always starts at pending; done and cancelled are terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status == StatusPending {
		return next == StatusDone || next == StatusCancelled
	}
	return false
}

// ValidBookingStatus reports whether the string names a known status
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// BookingsFilter flexible filter for listing bookings
type BookingsFilter struct {
	Date            *time.Time     // exact calendar date
	StartDate       *time.Time     // period start (inclusive)
	EndDate         *time.Time     // period end (inclusive)
	Status          *BookingStatus // filter by status
	Barber          *string        // filter by assigned barber
	IncludeInactive bool           // include cancelled bookings
}

// Service represents an offered service from the shop roster
type Service struct {
	Name            string
	Price           float64
	DurationMinutes int
}
