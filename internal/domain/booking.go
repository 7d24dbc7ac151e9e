package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusCompleted   BookingStatus = "completed"
	StatusNoShow      BookingStatus = "no_show"
	StatusRescheduled BookingStatus = "rescheduled"
)

// CustomerInfo holds the contact details supplied on the booking form.
// Name and Phone are required, Email is optional.
type CustomerInfo struct {
	Name  string
	Phone string
	Email *string
}

// Booking represents a reservation created by the upstream reservation API.
// Status transitions are server-owned; the gateway only initiates customer
// cancellation and never mutates status locally.
type Booking struct {
	ID           string
	BusinessSlug string
	ServiceID    string
	TableID      string
	StartsAt     time.Time // UTC
	EndsAt       time.Time // UTC
	PartySize    int
	Customer     CustomerInfo
	Status       BookingStatus

	// Denormalized display data attached by the upstream API
	ServiceName  string
	BusinessName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking status permits customer cancellation
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
