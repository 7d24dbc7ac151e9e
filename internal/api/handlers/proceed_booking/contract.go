package proceed_booking

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
)

type SessionsService interface {
	Proceed(ctx context.Context, sessionID string) (*models.ProceedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
