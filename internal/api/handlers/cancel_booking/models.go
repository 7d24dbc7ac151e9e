package cancel_booking

import (
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Phone string `json:"phone"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID       string    `json:"id"`
	Status   string    `json:"status"`
	StartsAt time.Time `json:"startsAt"`
}

// FromDomain конвертирует отмененное бронирование в HTTP response
func FromDomain(b *domain.Booking) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:       b.ID,
		Status:   string(b.Status),
		StartsAt: b.StartsAt,
	}
}
