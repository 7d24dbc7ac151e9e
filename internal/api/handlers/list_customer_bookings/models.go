package list_customer_bookings

import (
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// CustomerBookingsResponse HTTP response model
type CustomerBookingsResponse struct {
	Bookings []CustomerBooking `json:"bookings"`
}

// CustomerBooking одна запись истории бронирований клиента
type CustomerBooking struct {
	BookingID   string    `json:"bookingId"`
	ServiceName string    `json:"serviceName,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	PartySize   int       `json:"partySize"`
	Status      string    `json:"status"`
	BookedAt    time.Time `json:"bookedAt"`
}

// FromDomainList конвертирует записи журнала в HTTP response
func FromDomainList(records []*domain.Submission) *CustomerBookingsResponse {
	out := make([]CustomerBooking, len(records))
	for i, rec := range records {
		out[i] = CustomerBooking{
			BookingID:   rec.BookingID,
			ServiceName: rec.ServiceName,
			StartsAt:    rec.StartsAt,
			EndsAt:      rec.EndsAt,
			PartySize:   rec.PartySize,
			Status:      rec.Status,
			BookedAt:    rec.CreatedAt,
		}
	}
	return &CustomerBookingsResponse{Bookings: out}
}
