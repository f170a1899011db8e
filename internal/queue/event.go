// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types published on the booking events queue.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published after a booking is created or cancelled.
// It carries enough information for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type BookingEvent struct {
	Type       string `json:"type"`
	TicketID   string `json:"ticket_id"`
	Facility   string `json:"facility"`
	Court      string `json:"court"`
	Slot       string `json:"slot"`
	Date       string `json:"date"`
	Price      uint32 `json:"price"`
	Status     string `json:"status"`
	Student    string `json:"student"`
	OccurredAt string `json:"occurred_at"`
}
