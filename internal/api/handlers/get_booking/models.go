package get_booking

import (
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string    `json:"id"`
	BusinessSlug string    `json:"businessSlug,omitempty"`
	ServiceID    string    `json:"serviceId"`
	ServiceName  string    `json:"serviceName,omitempty"`
	TableID      string    `json:"tableId,omitempty"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	PartySize    int       `json:"partySize"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		BusinessSlug: b.BusinessSlug,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		TableID:      b.TableID,
		StartsAt:     b.StartsAt,
		EndsAt:       b.EndsAt,
		PartySize:    b.PartySize,
		Status:       string(b.Status),
		CustomerName: b.Customer.Name,
	}
}
