package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/integrations/reserveapi"
)

// UseCase use case отправки бронирования: валидация полей клиента, сборка
// запроса из черновика и отправка в reservation API. Контенция за слот
// решается только сервером; наша задача - обнаружить проигрыш гонки и
// показать его, а не предотвратить.
type UseCase struct {
	client       ReserveAPIClient
	draftStore   DraftStore
	submissions  SubmissionsRepository
	timeProvider TimeProvider
	logger       Logger

	// Черновики с отправкой в полете. Повторный submit того же токена до
	// завершения первого отклоняется - аналог disable-during-submit.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewUseCase создает новый экземпляр use case.
// submissions может быть nil - тогда журнал не ведется.
func NewUseCase(
	client ReserveAPIClient,
	draftStore DraftStore,
	submissions SubmissionsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		draftStore:   draftStore,
		submissions:  submissions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		inFlight:     make(map[string]struct{}),
	}
}

// Execute выполняет отправку бронирования.
//
// При отказе сервера (слот заняли между выбором и отправкой) черновик НЕ
// удаляется: форма и данные клиента переживают ошибку, повторная попытка не
// требует повторного ввода. Черновик потребляется ровно один раз - при
// успешной отправке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: draft=%s", req.DraftToken)

	if strings.TrimSpace(req.DraftToken) == "" {
		return nil, ErrDraftNotFound
	}

	// 1. Single-flight по токену черновика
	if err := uc.acquire(req.DraftToken); err != nil {
		uc.logger.Warn("SubmitBooking: draft=%s already in flight", req.DraftToken)
		return nil, err
	}
	defer uc.release(req.DraftToken)

	// 2. Достаем черновик
	draft, err := uc.draftStore.Get(ctx, req.DraftToken)
	if err != nil {
		uc.logger.Warn("SubmitBooking: draft=%s not found: %v", req.DraftToken, err)
		return nil, ErrDraftNotFound
	}

	// 3. Все проверки разом, каждая ошибка в ответе
	if errs := validateCustomer(req, draft); len(errs) > 0 {
		uc.logger.Warn("SubmitBooking: draft=%s validation failed: %v", req.DraftToken, errs)
		return nil, errs
	}

	// 4. Собираем запрос. Timestamps слота проходят насквозь без изменений:
	// они идентифицируют слот на сервере.
	email := req.Email
	if email != nil && strings.TrimSpace(*email) == "" {
		email = nil
	}
	createReq := &reserveapi.BookingCreateRequest{
		ServiceID: draft.ServiceID,
		TableID:   *draft.TableID,
		StartsAt:  draft.Slot.StartsAt,
		EndsAt:    draft.Slot.EndsAt,
		PartySize: draft.PartySize,
		Customer: reserveapi.CustomerPayload{
			Name:  strings.TrimSpace(req.Name),
			Phone: strings.TrimSpace(req.Phone),
			Email: email,
		},
	}

	// 5. Отправляем
	booking, err := uc.client.CreateBooking(ctx, draft.BusinessSlug, createReq)
	if err != nil {
		var conflict *reserveapi.ConflictError
		if errors.As(err, &conflict) {
			// Сообщение сервера показывается дословно, черновик остается
			// для повторной попытки.
			uc.logger.Warn("SubmitBooking: draft=%s lost the slot race: %s", req.DraftToken, conflict.Message)
			return nil, &ConflictError{Message: conflict.Message}
		}
		uc.logger.Error("SubmitBooking: draft=%s submission failed: %v", req.DraftToken, err)
		return nil, fmt.Errorf("%w: submission failed: %v", ErrInternal, err)
	}

	// 6. Черновик потреблен - удаляем. Ошибка удаления не фатальна:
	// TTL доберет его сам.
	if err := uc.draftStore.Delete(ctx, req.DraftToken); err != nil {
		uc.logger.Warn("SubmitBooking: draft=%s cleanup failed: %v", req.DraftToken, err)
	}

	// 7. Журналируем отправку (best-effort)
	uc.recordSubmission(ctx, draft, booking)

	uc.logger.Info("SubmitBooking: successfully created booking id=%s for draft=%s", booking.ID, req.DraftToken)

	return &Response{
		Booking:          booking,
		BusinessTimezone: draft.BusinessTimezone,
		LocalDate:        draft.LocalDate,
	}, nil
}

func (uc *UseCase) recordSubmission(ctx context.Context, draft *domain.BookingDraft, booking *domain.Booking) {
	if uc.submissions == nil {
		return
	}
	record := &domain.Submission{
		BookingID:    booking.ID,
		BusinessSlug: draft.BusinessSlug,
		ServiceID:    draft.ServiceID,
		TableID:      booking.TableID,
		StartsAt:     booking.StartsAt,
		EndsAt:       booking.EndsAt,
		PartySize:    booking.PartySize,
		Name:         booking.Customer.Name,
		Phone:        booking.Customer.Phone,
		Email:        booking.Customer.Email,
		Status:       string(booking.Status),
		ServiceName:  booking.ServiceName,
		CreatedAt:    uc.timeProvider.Now(),
	}
	if err := uc.submissions.Create(ctx, record); err != nil {
		// Журнал вторичен: его отказ не должен ронять успешную отправку.
		uc.logger.Error("SubmitBooking: failed to record submission for booking id=%s: %v", booking.ID, err)
	}
}

func (uc *UseCase) acquire(token string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[token]; busy {
		return ErrSubmissionInFlight
	}
	uc.inFlight[token] = struct{}{}
	return nil
}

func (uc *UseCase) release(token string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, token)
}
