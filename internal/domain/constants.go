package domain

// Slot grid constants
const (
	// SlotIntervalMinutes fixed slot grid step; service durations are
	// normalized to whole multiples of this interval
	SlotIntervalMinutes = 30

	DefaultServiceDurationMinutes = 30
)

// Business validation constants
const (
	MinWeekday = 1 // Monday (ISO 8601)
	MaxWeekday = 7 // Sunday (ISO 8601)

	MaxFullNameLength    = 120
	MaxPhoneNumberLength = 20
	MaxEmailLength       = 254
	MaxNotesLength       = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists the statuses that occupy a slot.
// Used when counting occupancy for availability.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusDone,
}
