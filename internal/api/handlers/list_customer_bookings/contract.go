package list_customer_bookings

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

type StorefrontService interface {
	ListCustomerBookings(ctx context.Context, slug, phone string) ([]*domain.Submission, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
