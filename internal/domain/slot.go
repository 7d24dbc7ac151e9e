package domain

import "time"

// AvailabilitySlot is one bookable window on one calendar date, for one
// service at one party size. A slot is valid only for the
// (date, service, party size) tuple it was fetched under and must be
// discarded - never reused - when any of the three change or when a fresh
// fetch no longer contains a matching start.
type AvailabilitySlot struct {
	StartsAt time.Time // UTC
	EndsAt   time.Time // UTC
}

// Equal compares slots by exact start instant, the identity the selector
// uses for re-validation.
func (s AvailabilitySlot) Equal(other AvailabilitySlot) bool {
	return s.StartsAt.Equal(other.StartsAt)
}

// AvailabilityMatrix is the availability fetch response. BusinessTimezone is
// authoritative for displaying every slot in the same response.
type AvailabilityMatrix struct {
	Slots            []AvailabilitySlot
	BusinessTimezone string
}

// Contains reports whether a slot with the given start instant is present.
func (m *AvailabilityMatrix) Contains(startsAt time.Time) bool {
	for _, s := range m.Slots {
		if s.StartsAt.Equal(startsAt) {
			return true
		}
	}
	return false
}

// SlotAt returns the slot with the given start instant, if present.
func (m *AvailabilityMatrix) SlotAt(startsAt time.Time) (AvailabilitySlot, bool) {
	for _, s := range m.Slots {
		if s.StartsAt.Equal(startsAt) {
			return s, true
		}
	}
	return AvailabilitySlot{}, false
}
