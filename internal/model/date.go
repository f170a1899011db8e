package model

import (
	"fmt"
	"time"
)

// dateLayout is the single calendar-date rendering used everywhere a
// booking date is stored or compared. The original portal compared
// locale-formatted date strings, which broke across timezones; every
// date in this system goes through this layout instead.
const dateLayout = "2006-01-02"

// Date is a calendar date in ISO form (YYYY-MM-DD). It deliberately
// carries no time-of-day or timezone; two bookings collide when their
// Date values are equal as strings.
type Date string

// ParseDate validates s against the canonical layout and returns it as
// a Date. Rejects anything time.Parse would not round-trip exactly,
// e.g. "2026-1-5" or dates with a time component.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	if t.Format(dateLayout) != s {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// DateOf renders the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Today returns the current calendar date in local time. Booking
// creation and the live feed both key off this value.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string { return string(d) }
