package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

func feedBooking(slot string, date model.Date) model.Booking {
	return model.Booking{ID: "t", Facility: "Squash", Court: "Court 1", Slot: slot, Date: date}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.Local)
}

func TestInCurrentWindowOtherDayHidden(t *testing.T) {
	now := at(10, 0)
	assert.False(t, InCurrentWindow(feedBooking("18:00", "2026-08-31"), now))
	assert.False(t, InCurrentWindow(feedBooking("18:00", "2026-09-02"), now))
}

func TestInCurrentWindowFutureAndCurrentHour(t *testing.T) {
	today := model.DateOf(at(0, 0))
	now := at(14, 30)

	// Slot at the current hour is in progress and stays visible.
	assert.True(t, InCurrentWindow(feedBooking("14:00", today), now))
	assert.True(t, InCurrentWindow(feedBooking("15:00", today), now))
	// Past hours drop off, even by one.
	assert.False(t, InCurrentWindow(feedBooking("13:00", today), now))
}

func TestInCurrentWindowTonightMidnightSlots(t *testing.T) {
	today := model.DateOf(at(0, 0))

	// Late-evening browsing still shows the after-midnight slots.
	assert.True(t, InCurrentWindow(feedBooking("01:00", today), at(22, 0)))
	// At 18:00 sharp the >18 condition does not hold yet; an 01:00
	// slot is simply a past hour.
	assert.False(t, InCurrentWindow(feedBooking("01:00", today), at(18, 0)))
	// Early morning: the 01:00 slot is past 01:59 gone, current at 01.
	assert.True(t, InCurrentWindow(feedBooking("01:00", today), at(1, 15)))
	assert.False(t, InCurrentWindow(feedBooking("01:00", today), at(2, 0)))
}

func TestFilterCurrentPreservesOrder(t *testing.T) {
	today := model.DateOf(at(0, 0))
	now := at(17, 0)

	in := []model.Booking{
		feedBooking("19:00", today),
		feedBooking("12:00", today),
		feedBooking("17:00", today),
		feedBooking("18:00", "2026-08-30"),
	}
	got := FilterCurrent(in, now)
	assert.Len(t, got, 2)
	assert.Equal(t, "19:00", got[0].Slot)
	assert.Equal(t, "17:00", got[1].Slot)
}
