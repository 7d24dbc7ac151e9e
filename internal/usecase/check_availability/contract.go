package check_availability

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// ReserveAPIClient интерфейс клиента reservation API
type ReserveAPIClient interface {
	CheckAvailability(ctx context.Context, slug, serviceID, date string, partySize int) (*domain.AvailabilityMatrix, error)
	GetServiceTables(ctx context.Context, slug, serviceID string) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
