package domain

import "github.com/klepi21/barberians/pkg/types"

// AvailableSlot represents a time slot with unused capacity.
// Capacity accounting is per barber: a slot can absorb as many concurrent
// bookings as there are barbers on the roster.
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int      // barbers still free at this start time
	TotalSpots      int      // roster size
	FreeBarbers     []string // barbers not yet booked at this start time
}

// IsFull returns true if the slot has no available spots
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsFullyAvailable returns true if no barber is booked at this slot
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}
