package domain

import "time"

// Submission is a denormalized audit record of a booking submitted through
// this gateway. The reservation API stays the source of truth for booking
// state; this log only answers "what did this customer book here".
type Submission struct {
	ID           int64
	BookingID    string
	BusinessSlug string
	ServiceID    string
	TableID      string
	StartsAt     time.Time
	EndsAt       time.Time
	PartySize    int
	Name         string
	Phone        string
	Email        *string
	Status       string
	ServiceName  string
	CreatedAt    time.Time
}
