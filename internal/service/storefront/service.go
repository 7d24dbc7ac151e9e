package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/integrations/reserveapi"
)

// Service сервис витрины: страницы бизнеса и услуг, просмотр и отмена
// бронирования по телефону, история отправок клиента из локального журнала.
type Service struct {
	client       ReserveAPIClient
	submissions  SubmissionsRepository
	timeProvider TimeProvider
	cancelNotice time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса витрины.
// submissions может быть nil - тогда история отправок недоступна.
func NewService(
	client ReserveAPIClient,
	submissions SubmissionsRepository,
	cancelNotice time.Duration,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		submissions:  submissions,
		timeProvider: &RealTimeProvider{},
		cancelNotice: cancelNotice,
		logger:       logger,
	}
}

// GetBusiness возвращает данные бизнеса по slug.
func (s *Service) GetBusiness(ctx context.Context, slug string) (*domain.Business, error) {
	s.logger.Info("GetBusiness: slug=%s", slug)

	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	business, err := s.client.GetBusiness(ctx, slug)
	if err != nil {
		if errors.Is(err, reserveapi.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: slug=%s upstream error: %v", slug, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return business, nil
}

// ListServices возвращает активные услуги бизнеса. Неактивные услуги на
// витрине не показываются.
func (s *Service) ListServices(ctx context.Context, slug string) ([]domain.Service, error) {
	s.logger.Info("ListServices: slug=%s", slug)

	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	services, err := s.client.GetServices(ctx, slug)
	if err != nil {
		if errors.Is(err, reserveapi.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ListServices: slug=%s upstream error: %v", slug, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	active := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}

	s.logger.Info("ListServices: slug=%s: %d of %d services active", slug, len(active), len(services))
	return active, nil
}

// GetBooking возвращает бронирование по ID. Телефон выступает учетными
// данными клиента: сервер отдает бронирование только при совпадении.
func (s *Service) GetBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error) {
	s.logger.Info("GetBooking: id=%s", bookingID)

	if strings.TrimSpace(bookingID) == "" || strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: booking id and phone are required", ErrInvalidInput)
	}

	booking, err := s.client.GetBooking(ctx, bookingID, phone)
	if err != nil {
		if errors.Is(err, reserveapi.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: id=%s upstream error: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return booking, nil
}

// Cancel отменяет бронирование клиента. Срок отмены сравнивается как два
// UTC-момента: "сейчас плюс notice" против starts_at визита. Таймзона
// бизнеса и зрителя на результат не влияют.
func (s *Service) Cancel(ctx context.Context, bookingID, phone string) (*domain.Booking, error) {
	s.logger.Info("Cancel: id=%s", bookingID)

	booking, err := s.GetBooking(ctx, bookingID, phone)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: id=%s in status %s cannot be cancelled", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if s.timeProvider.Now().Add(s.cancelNotice).After(booking.StartsAt) {
		s.logger.Warn("Cancel: id=%s starts at %s, notice window of %s missed",
			bookingID, booking.StartsAt.Format(time.RFC3339), s.cancelNotice)
		return nil, ErrTooLateToCancel
	}

	cancelled, err := s.client.CancelBooking(ctx, bookingID, phone)
	if err != nil {
		if errors.Is(err, reserveapi.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: id=%s upstream error: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	s.logger.Info("Cancel: id=%s successfully cancelled", bookingID)
	return cancelled, nil
}

// ListCustomerBookings возвращает историю отправок клиента у данного бизнеса
// из локального журнала. Журнал знает только о бронированиях, сделанных через
// этот gateway.
func (s *Service) ListCustomerBookings(ctx context.Context, slug, phone string) ([]*domain.Submission, error) {
	s.logger.Info("ListCustomerBookings: slug=%s", slug)

	if strings.TrimSpace(slug) == "" || strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: business slug and phone are required", ErrInvalidInput)
	}
	if s.submissions == nil {
		return []*domain.Submission{}, nil
	}

	records, err := s.submissions.ListByPhone(ctx, slug, phone)
	if err != nil {
		s.logger.Error("ListCustomerBookings: slug=%s repository error: %v", slug, err)
		return nil, fmt.Errorf("%w: ListCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCustomerBookings: slug=%s: %d submissions", slug, len(records))
	return records, nil
}
