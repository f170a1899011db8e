package booking

import (
	"time"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

// InCurrentWindow decides whether a booking belongs on the warden's
// live feed: today's bookings whose slot is still current or upcoming.
// A slot at the current hour stays visible (at 14:30 the 14:00 booking
// is in progress), and after-midnight slots (00:00–05:59) show up
// during late-evening browsing since they are still "tonight". The
// boundary is deliberately hour-granular and asymmetric, not a range
// overlap; this is a display filter only and has no effect on
// availability or verification.
func InCurrentWindow(b model.Booking, now time.Time) bool {
	if b.Date != model.DateOf(now) {
		return false
	}
	hour, err := SlotHour(b.Slot)
	if err != nil {
		return false
	}
	if hour < moonlightEndHour && now.Hour() > 18 {
		return true
	}
	return hour >= now.Hour()
}

// FilterCurrent applies InCurrentWindow over a snapshot, preserving
// order.
func FilterCurrent(bookings []model.Booking, now time.Time) []model.Booking {
	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if InCurrentWindow(b, now) {
			out = append(out, b)
		}
	}
	return out
}
