package booking

import "github.com/Prabheesh178/woxsen-league/internal/model"

// Reason explains why a slot was refused. The values double as the
// machine-readable error codes in API responses.
type Reason string

const (
	// ReasonDailyLimit means the student already holds a booking at
	// this facility on this date. One hour per facility per day.
	ReasonDailyLimit Reason = "DailyLimitReached"
	// ReasonSlotTaken means another booking already occupies the exact
	// (facility, court, slot, date) tuple.
	ReasonSlotTaken Reason = "SlotTaken"
)

// SlotRequest identifies the slot a student wants and who is asking.
type SlotRequest struct {
	Facility string
	Court    string
	Slot     string
	Date     model.Date
	Student  string
}

// Availability is the resolver's verdict for one slot request.
type Availability struct {
	Available bool
	Reason    Reason
}

// CheckSlot decides whether the requested slot is open to the student
// given the current booking set. The daily-cap check runs first: when a
// request trips both rules the student is told about their own limit,
// not about the other booking. Date comparison is plain equality of
// model.Date values; the caller is responsible for evaluating against a
// fresh snapshot (and the repository re-runs both checks inside the
// write transaction).
func CheckSlot(existing []model.Booking, req SlotRequest) Availability {
	for _, b := range existing {
		if b.Student == req.Student && b.Facility == req.Facility && b.Date == req.Date {
			return Availability{Available: false, Reason: ReasonDailyLimit}
		}
	}
	for _, b := range existing {
		if b.Facility == req.Facility && b.Court == req.Court && b.Slot == req.Slot && b.Date == req.Date {
			return Availability{Available: false, Reason: ReasonSlotTaken}
		}
	}
	return Availability{Available: true}
}

// HasDailyBooking reports whether the student already holds any booking
// at the facility on the date. The availability grid uses this to mark
// every remaining slot with the limit flag.
func HasDailyBooking(existing []model.Booking, student, facility string, date model.Date) bool {
	for _, b := range existing {
		if b.Student == student && b.Facility == facility && b.Date == date {
			return true
		}
	}
	return false
}

// SlotTaken reports whether the exact tuple is already booked by
// anyone.
func SlotTaken(existing []model.Booking, facility, court, slot string, date model.Date) bool {
	for _, b := range existing {
		if b.Facility == facility && b.Court == court && b.Slot == slot && b.Date == date {
			return true
		}
	}
	return false
}
