package get_booking

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

type StorefrontService interface {
	GetBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
