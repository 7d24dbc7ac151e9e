package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnpapajani/rezi-booking-gateway/internal/assigner"
	"github.com/johnpapajani/rezi-booking-gateway/internal/integrations/reserveapi"
)

// UseCase use case получения доступности: матрица слотов на дату плюс столы,
// способные вместить группу. Это единственный источник слотов для селектора.
type UseCase struct {
	client ReserveAPIClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ReserveAPIClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет запрос доступности. При любой ошибке слоты не
// возвращаются вовсе (fail-safe): устаревший успех никогда не выдается за
// актуальный.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: business=%s, service=%s, date=%s, party=%d",
		req.BusinessSlug, req.ServiceID, req.Date, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Матрица слотов на (date, partySize)
	matrix, err := uc.client.CheckAvailability(ctx, req.BusinessSlug, req.ServiceID, req.Date, req.PartySize)
	if err != nil {
		return nil, uc.mapClientError("availability", req, err)
	}

	// 3. Столы услуги, отдельным запросом
	tables, err := uc.client.GetServiceTables(ctx, req.BusinessSlug, req.ServiceID)
	if err != nil {
		return nil, uc.mapClientError("tables", req, err)
	}

	// 4. Фильтруем по вместимости, сохраняя порядок upstream списка -
	// от него зависит first-fit подбор стола.
	eligible := assigner.Eligible(tables, req.PartySize)

	uc.logger.Info("CheckAvailability: business=%s, service=%s, date=%s: %d slots, %d/%d tables fit party of %d",
		req.BusinessSlug, req.ServiceID, req.Date, len(matrix.Slots), len(eligible), len(tables), req.PartySize)

	return &Response{
		Matrix:    matrix,
		Resources: eligible,
	}, nil
}

func (uc *UseCase) mapClientError(stage string, req *Request, err error) error {
	switch {
	case errors.Is(err, reserveapi.ErrBusinessNotFound):
		uc.logger.Warn("CheckAvailability: business %s not found", req.BusinessSlug)
		return ErrBusinessNotFound
	case errors.Is(err, reserveapi.ErrServiceNotFound):
		uc.logger.Warn("CheckAvailability: service %s not found for business %s", req.ServiceID, req.BusinessSlug)
		return ErrServiceNotFound
	default:
		uc.logger.Error("CheckAvailability: %s fetch failed for business=%s, service=%s: %v",
			stage, req.BusinessSlug, req.ServiceID, err)
		return fmt.Errorf("%w: %s fetch failed: %v", ErrUpstreamUnavailable, stage, err)
	}
}
