// Package booking holds the core reservation rules: slot pricing,
// availability conflict resolution, the system gate, ticket
// verification and the warden live-feed window. Everything here is
// pure; persistence and transport live in repository and handler.
package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// moonlightEndHour bounds the night-rate window: slots with hour in
// [0, 6) are charged the facility's night price, everything from 06:00
// onward is free. Matches the campus lights-out policy.
const moonlightEndHour = 6

// Status labels derived from the computed price. These are the exact
// labels shown on tickets and the warden feed.
const (
	StatusPaid = "Paid (UPI)"
	StatusFree = "Free Slot"
)

// SlotHour parses an HH:MM slot label and returns its hour. Labels are
// strict: two digits, a colon, two digits, hour 0-23, minute 0-59.
func SlotHour(label string) (int, error) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid slot label %q: want HH:MM", label)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid slot hour in %q", label)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid slot minute in %q", label)
	}
	return h, nil
}

// IsMoonlight reports whether a slot hour falls in the night-rate
// window (00:00 through 05:59).
func IsMoonlight(hour int) bool {
	return hour >= 0 && hour < moonlightEndHour
}

// SlotPrice returns the price for a slot hour given the facility's
// night rate: the night rate for moonlight hours, zero otherwise.
func SlotPrice(hour int, nightRate uint32) uint32 {
	if IsMoonlight(hour) {
		return nightRate
	}
	return 0
}

// StatusForPrice maps a computed price to its display status.
func StatusForPrice(price uint32) string {
	if price > 0 {
		return StatusPaid
	}
	return StatusFree
}
