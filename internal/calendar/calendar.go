package calendar

import "time"

// CheckDate reports whether year/month/day name a real calendar date.
func CheckDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	// Normalization moves an impossible date (e.g. 02/30) into the next
	// month, so a round-trip mismatch means the components were invalid.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// CheckTime reports whether hour/minute form a valid time of day.
func CheckTime(hour, min int) bool {
	return hour >= 0 && hour < 24 && min >= 0 && min < 60
}

// Midnight returns the start of the day containing t, in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayStart converts validated date components to the local midnight
// timestamp used as an event's day key. ok is false when the calendar
// system cannot represent the components.
func DayStart(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EndOfDay returns the last representable second of the day containing t.
func EndOfDay(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, 1).Add(-time.Second)
}
