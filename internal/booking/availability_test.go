package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

const testDate = model.Date("2026-09-01")

func arenaBooking(id, court, slot, student string) model.Booking {
	return model.Booking{
		ID:       id,
		Facility: "Badminton Arena",
		Court:    court,
		Slot:     slot,
		Date:     testDate,
		Student:  student,
	}
}

func arenaRequest(court, slot, student string) SlotRequest {
	return SlotRequest{
		Facility: "Badminton Arena",
		Court:    court,
		Slot:     slot,
		Date:     testDate,
		Student:  student,
	}
}

func TestCheckSlotEmptySet(t *testing.T) {
	got := CheckSlot(nil, arenaRequest("Court 1", "01:00", "a@x.edu"))
	assert.True(t, got.Available)
	assert.Empty(t, got.Reason)
}

func TestCheckSlotTakenByOtherStudent(t *testing.T) {
	existing := []model.Booking{arenaBooking("t1", "Court 1", "01:00", "b@x.edu")}

	got := CheckSlot(existing, arenaRequest("Court 1", "01:00", "a@x.edu"))
	assert.False(t, got.Available)
	assert.Equal(t, ReasonSlotTaken, got.Reason)
}

func TestCheckSlotDailyLimitAnyCourtOrSlot(t *testing.T) {
	existing := []model.Booking{arenaBooking("t1", "Court 3", "18:00", "a@x.edu")}

	// Different court and slot, same facility and date: still capped.
	got := CheckSlot(existing, arenaRequest("Court 1", "21:00", "a@x.edu"))
	assert.False(t, got.Available)
	assert.Equal(t, ReasonDailyLimit, got.Reason)
}

func TestCheckSlotDailyLimitWinsOverSlotTaken(t *testing.T) {
	// The student's own earlier booking trips both rules when they
	// re-request the identical tuple; the daily-limit message takes
	// precedence.
	existing := []model.Booking{arenaBooking("t1", "Court 1", "01:00", "a@x.edu")}

	got := CheckSlot(existing, arenaRequest("Court 1", "01:00", "a@x.edu"))
	assert.False(t, got.Available)
	assert.Equal(t, ReasonDailyLimit, got.Reason)
}

func TestCheckSlotMutualExclusion(t *testing.T) {
	// Whichever of two identical requests lands first, the second must
	// be refused when evaluated against a state containing the first.
	first := arenaRequest("Court 2", "20:00", "a@x.edu")
	second := arenaRequest("Court 2", "20:00", "b@x.edu")

	assert.True(t, CheckSlot(nil, first).Available)
	after := []model.Booking{arenaBooking("t1", first.Court, first.Slot, first.Student)}
	assert.False(t, CheckSlot(after, second).Available)

	assert.True(t, CheckSlot(nil, second).Available)
	after = []model.Booking{arenaBooking("t2", second.Court, second.Slot, second.Student)}
	assert.False(t, CheckSlot(after, first).Available)
}

func TestCheckSlotDifferentDateIsFree(t *testing.T) {
	existing := []model.Booking{arenaBooking("t1", "Court 1", "01:00", "a@x.edu")}

	req := arenaRequest("Court 1", "01:00", "a@x.edu")
	req.Date = model.Date("2026-09-02")
	assert.True(t, CheckSlot(existing, req).Available)
}

func TestCheckSlotDifferentFacilitySameDay(t *testing.T) {
	// The daily cap is per facility, not global.
	existing := []model.Booking{arenaBooking("t1", "Court 1", "18:00", "a@x.edu")}

	req := SlotRequest{Facility: "Squash", Court: "Court 1", Slot: "18:00", Date: testDate, Student: "a@x.edu"}
	assert.True(t, CheckSlot(existing, req).Available)
}

func TestHasDailyBookingAndSlotTaken(t *testing.T) {
	existing := []model.Booking{arenaBooking("t1", "Court 1", "18:00", "a@x.edu")}

	assert.True(t, HasDailyBooking(existing, "a@x.edu", "Badminton Arena", testDate))
	assert.False(t, HasDailyBooking(existing, "b@x.edu", "Badminton Arena", testDate))
	assert.False(t, HasDailyBooking(existing, "a@x.edu", "Squash", testDate))

	assert.True(t, SlotTaken(existing, "Badminton Arena", "Court 1", "18:00", testDate))
	assert.False(t, SlotTaken(existing, "Badminton Arena", "Court 2", "18:00", testDate))
	assert.False(t, SlotTaken(existing, "Badminton Arena", "Court 1", "19:00", testDate))
}
