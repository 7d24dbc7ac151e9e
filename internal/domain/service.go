package domain

import "time"

// BookingMode determines how availability is computed for a service.
type BookingMode string

const (
	// ModeAppointment services derive availability from weekly open intervals.
	ModeAppointment BookingMode = "appointment"
	// ModeSession services are booked session-by-session; weekly intervals
	// are ignored and availability is computed entirely upstream.
	ModeSession BookingMode = "session"
)

// Service represents a bookable offering owned by a business.
type Service struct {
	ID              string
	BusinessID      string
	Name            string
	Description     string
	DurationMinutes int
	// Price in minor currency units (e.g. cents). Conversion to major units
	// happens only at the formatting boundary.
	Price         int64
	Active        bool
	Mode          BookingMode
	OpenIntervals []OpenInterval
}

// OpenInterval is one weekly opening window. Only meaningful for
// appointment-mode services.
type OpenInterval struct {
	Weekday  time.Weekday
	StartsAt string // "HH:MM", business-local wall clock
	EndsAt   string // "HH:MM", business-local wall clock
}

// DisplayPrice converts the minor-unit price into major units for rendering.
func (s *Service) DisplayPrice() float64 {
	return float64(s.Price) / 100
}
