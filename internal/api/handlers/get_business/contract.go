package get_business

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

type StorefrontService interface {
	GetBusiness(ctx context.Context, slug string) (*domain.Business, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
