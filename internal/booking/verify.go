package booking

import (
	"strings"
	"time"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

// OverrideTicketID marks the synthetic record returned when the
// configured override token is presented instead of a real ticket.
const OverrideTicketID = "ADMIN-OVERRIDE"

// VerifyResult is the admission decision for a presented ticket ID.
// Override is set when the match came from the override token rather
// than a stored booking, so callers can log the use.
type VerifyResult struct {
	Valid    bool
	Override bool
	Booking  model.Booking
}

// TicketLookup resolves a ticket ID to its booking. The repository's
// GetByID satisfies this; tests supply a map-backed func.
type TicketLookup func(id string) (model.Booking, bool)

// Verify checks a presented ticket identifier for gate admission.
//
// When overrideToken is non-empty and matches case-insensitively, the
// result is always valid with a synthetic override record — this is the
// portal's documented demo/override mechanism and is disabled entirely
// unless an operator configures the token. Otherwise the ID is looked
// up by exact match. Tickets never expire and verify repeatedly; there
// is no single-use invalidation.
func Verify(lookup TicketLookup, presented, overrideToken string) VerifyResult {
	presented = strings.TrimSpace(presented)
	if overrideToken != "" && strings.EqualFold(presented, overrideToken) {
		return VerifyResult{
			Valid:    true,
			Override: true,
			Booking: model.Booking{
				ID:       OverrideTicketID,
				Facility: "Any Facility",
				Slot:     "NOW",
				Date:     model.Today(),
				Status:   StatusFree,
				Student:  "override@warden",
				CreatedAt: time.Now(),
			},
		}
	}
	if b, ok := lookup(presented); ok {
		return VerifyResult{Valid: true, Booking: b}
	}
	return VerifyResult{}
}
