package select_slot

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
)

type SessionsService interface {
	SelectSlot(ctx context.Context, req *models.SelectSlotRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
