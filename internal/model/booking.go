package model

import "time"

// Booking records one student's hold on a (facility, court, slot, date)
// tuple. Rows are append-only: cancellation deletes the row, nothing is
// ever updated in place. The slot-uniqueness invariant is enforced both
// by the availability check before the write and by a unique key on
// (facility_name, court_name, slot_label, slot_date).
//
// Fields:
//  ID        – store-assigned opaque ticket identifier. Encoded into
//              the QR code shown at the gate and presented back to the
//              warden for verification.
//  Facility  – facility name from the catalog.
//  Court     – court name within the facility.
//  Slot      – HH:MM slot label.
//  Date      – calendar date the slot applies to.
//  Price     – amount charged, zero for daytime slots.
//  Status    – display label derived from the price ("Paid (UPI)" or
//              "Free Slot").
//  Student   – login email of the booking student.
//  CreatedAt – creation timestamp.
type Booking struct {
	ID        string    `json:"id"`         // bookings.id
	Facility  string    `json:"facility"`   // bookings.facility_name
	Court     string    `json:"court"`      // bookings.court_name
	Slot      string    `json:"slot"`       // bookings.slot_label
	Date      Date      `json:"date"`       // bookings.slot_date
	Price     uint32    `json:"price"`      // bookings.price
	Status    string    `json:"status"`     // bookings.status
	Student   string    `json:"student"`    // bookings.student_email
	CreatedAt time.Time `json:"created_at"` // bookings.created_at
}
