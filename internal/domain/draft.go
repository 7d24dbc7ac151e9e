package domain

import "time"

// BookingDraft accumulates the customer's selection between the availability
// screen and the booking form. It is transient: it has no identity beyond
// its token, expires with its TTL and is consumed exactly once by a
// successful submission.
type BookingDraft struct {
	Token        string
	BusinessSlug string
	ServiceID    string
	// LocalDate is the selected calendar date as a business-local Y-M-D
	// string, never UTC-shifted.
	LocalDate string
	Slot      AvailabilitySlot
	PartySize int
	// TableID is set by the auto-assigner when the draft is created.
	// Nil means no table could seat the party; submission is then blocked
	// by validation, not by draft creation.
	TableID          *string
	BusinessTimezone string
	CreatedAt        time.Time
}
