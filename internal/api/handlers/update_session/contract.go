package update_session

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
)

type SessionsService interface {
	UpdateSelection(ctx context.Context, req *models.UpdateSelectionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
