package submit_booking

import (
	"context"
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/integrations/reserveapi"
)

// ReserveAPIClient интерфейс клиента reservation API
type ReserveAPIClient interface {
	CreateBooking(ctx context.Context, slug string, req *reserveapi.BookingCreateRequest) (*domain.Booking, error)
}

// DraftStore интерфейс хранилища черновиков бронирования
type DraftStore interface {
	Get(ctx context.Context, token string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, token string) error
}

// SubmissionsRepository интерфейс журнала отправленных бронирований
type SubmissionsRepository interface {
	Create(ctx context.Context, record *domain.Submission) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
