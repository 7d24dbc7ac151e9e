package storefront

import (
	"context"
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// ReserveAPIClient интерфейс клиента reservation API
type ReserveAPIClient interface {
	GetBusiness(ctx context.Context, slug string) (*domain.Business, error)
	GetServices(ctx context.Context, slug string) ([]domain.Service, error)
	GetBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error)
}

// SubmissionsRepository интерфейс журнала отправленных бронирований
type SubmissionsRepository interface {
	ListByPhone(ctx context.Context, businessSlug, phone string) ([]*domain.Submission, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
