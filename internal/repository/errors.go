// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to stable API error codes without string matching.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, such as a student cancelling another
// student's booking. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrSlotTaken is returned when the requested (facility, court, slot,
// date) tuple is already booked. The check runs inside the create
// transaction and is additionally backed by a unique key, so two
// concurrent create requests for the same tuple cannot both succeed.
var ErrSlotTaken = errors.New("slot already booked")

// ErrDailyLimit is returned when the student already holds a booking at
// the facility on the requested date, regardless of court or slot.
var ErrDailyLimit = errors.New("daily booking limit reached")

// ErrTicketNotFound is returned when no booking exists for a given
// ticket identifier.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrSettingsConflict is returned when a compare-and-swap write of the
// system settings record loses to a concurrent warden update. Callers
// should re-read and retry against the fresh version.
var ErrSettingsConflict = errors.New("settings version conflict")
