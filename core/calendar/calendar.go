// Package calendar provides civil-date arithmetic for billing windows.
//
// All dates in the system are carried as time.Time values at UTC
// midnight; this package owns their construction and arithmetic so the
// rest of the core never touches time-of-day or zone handling.
package calendar

import (
	"time"

	"power-cost/internal/errors"
)

// Date builds a civil date at UTC midnight
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize truncates a timestamp to its civil date at UTC midnight
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return Date(y, m, d)
}

// AddDays shifts a date by n whole days
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from a to b. Negative
// when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)).Hours() / 24)
}

// DaysInMonth returns the number of days in the given calendar month,
// leap-year aware
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// Sentinel is the open-ended upper bound for the last tariff interval of
// an account. Every representable future date resolves below it.
func Sentinel() time.Time {
	return Date(3000, time.December, 31)
}

// ShiftMonths shifts a date by n months, carrying year rollover in both
// directions. When the day-of-month does not exist in the target month
// (day 29-31 landing on a shorter month) the day is clamped to 28 and
// clamped=true is returned so the caller can surface a
// CalendarOverflowWarning. Shifts beyond 12 months in either direction
// must be decomposed by the caller and are rejected.
func ShiftMonths(d time.Time, n int) (time.Time, bool, error) {
	if n > 12 || n < -12 {
		return time.Time{}, false, errors.Calendar("month shift out of range [-12,12], decompose into repeated calls")
	}

	d = Normalize(d)
	months := int(d.Month()) - 1 + n
	year := d.Year()
	for months < 0 {
		months += 12
		year--
	}
	for months > 11 {
		months -= 12
		year++
	}
	month := time.Month(months + 1)

	day := d.Day()
	clamped := false
	if day > DaysInMonth(year, month) {
		day = 28
		clamped = true
	}
	return Date(year, month, day), clamped, nil
}

// NextAnniversary returns the next occurrence of the historical invoice
// date's month and day strictly after now. A February 29 anniversary on
// a non-leap target year falls back to day 28, reported via clamped.
func NextAnniversary(historical, now time.Time) (next time.Time, clamped bool) {
	historical = Normalize(historical)
	today := Normalize(now)

	next, clamped = anniversaryIn(today.Year(), historical)
	if !next.After(today) {
		next, clamped = anniversaryIn(today.Year()+1, historical)
	}
	return next, clamped
}

func anniversaryIn(year int, historical time.Time) (time.Time, bool) {
	day := historical.Day()
	clamped := false
	if day > DaysInMonth(year, historical.Month()) {
		day = 28
		clamped = true
	}
	return Date(year, historical.Month(), day), clamped
}
