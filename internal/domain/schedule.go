package domain

import (
	"time"

	"github.com/klepi21/barberians/pkg/types"
)

// WeeklyHours recurring opening hours for one weekday.
// A weekday without an entry is closed by default.
type WeeklyHours struct {
	ID        int64
	Weekday   int // 1=Monday .. 7=Sunday (ISO 8601)
	OpenTime  types.TimeString
	CloseTime types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateOverride replaces the weekly hours for one calendar date entirely.
// Closed is an explicit flag; a midnight open/close pair is a legitimate
// schedule, not a closed marker.
type DateOverride struct {
	ID        int64
	Date      time.Time
	OpenTime  types.TimeString
	CloseTime types.TimeString
	Closed    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Break recurring weekly exclusion window within otherwise-open hours.
// Multiple breaks per weekday are allowed and may overlap; they act as a
// union of excluded intervals.
type Break struct {
	ID        int64
	Weekday   int // 1=Monday .. 7=Sunday (ISO 8601)
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleConfig read-only snapshot of the schedule configuration consumed
// by the availability engine for one target date.
type ScheduleConfig struct {
	WeeklyHours []WeeklyHours
	Overrides   []DateOverride
	Breaks      []Break
}

// ISOWeekday returns the ISO 8601 weekday for a date: Monday=1 .. Sunday=7
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly strips the time-of-day part of a timestamp
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
