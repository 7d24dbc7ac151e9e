package sessions

import (
	"context"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/selector"
	"github.com/johnpapajani/rezi-booking-gateway/internal/usecase/check_availability"
)

// AvailabilityFetcher интерфейс источника матрицы слотов и подходящих столов
type AvailabilityFetcher interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// SessionRegistry интерфейс реестра активных сессий выбора
type SessionRegistry interface {
	Put(s *selector.Session)
	Get(id string) (*selector.Session, error)
	Delete(id string)
}

// DraftStore интерфейс хранилища черновиков бронирования
type DraftStore interface {
	Save(ctx context.Context, draft *domain.BookingDraft) error
}

// IDGenerator интерфейс генерации идентификаторов сессий и токенов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
