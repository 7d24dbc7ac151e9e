package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/integrations/reserveapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

type fakeClient struct {
	business  *domain.Business
	services  []domain.Service
	booking   *domain.Booking
	err       error
	cancelled []string
}

func (f *fakeClient) GetBusiness(context.Context, string) (*domain.Business, error) {
	return f.business, f.err
}

func (f *fakeClient) GetServices(context.Context, string) ([]domain.Service, error) {
	return f.services, f.err
}

func (f *fakeClient) GetBooking(context.Context, string, string) (*domain.Booking, error) {
	return f.booking, f.err
}

func (f *fakeClient) CancelBooking(_ context.Context, id, _ string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.cancelled = append(f.cancelled, id)
	b := *f.booking
	b.Status = domain.StatusCancelled
	return &b, nil
}

type fakeSubmissions struct {
	records []*domain.Submission
	err     error
}

func (f *fakeSubmissions) ListByPhone(context.Context, string, string) ([]*domain.Submission, error) {
	return f.records, f.err
}

var testNow = time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

func newTestService(client *fakeClient, subs SubmissionsRepository) *Service {
	svc := NewService(client, subs, time.Hour, nopLogger{})
	svc.timeProvider = &fakeTime{now: testNow}
	return svc
}

func confirmedBookingAt(startsAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:       "bk-1",
		StartsAt: startsAt,
		EndsAt:   startsAt.Add(time.Hour),
		Status:   domain.StatusConfirmed,
	}
}

func TestListServices_FiltersInactive(t *testing.T) {
	client := &fakeClient{services: []domain.Service{
		{ID: "s1", Name: "Dinner", Active: true},
		{ID: "s2", Name: "Retired tasting", Active: false},
		{ID: "s3", Name: "Lunch", Active: true},
	}}
	svc := newTestService(client, nil)

	services, err := svc.ListServices(context.Background(), "tavolina-12")

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "s1", services[0].ID)
	assert.Equal(t, "s3", services[1].ID)
}

func TestGetBusiness_MapsNotFound(t *testing.T) {
	svc := newTestService(&fakeClient{err: reserveapi.ErrBusinessNotFound}, nil)

	_, err := svc.GetBusiness(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestGetBusiness_UpstreamFailure(t *testing.T) {
	svc := newTestService(&fakeClient{err: errors.New("connection refused")}, nil)

	_, err := svc.GetBusiness(context.Background(), "tavolina-12")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCancel_WithinNoticeWindow(t *testing.T) {
	// Визит через три часа, notice один час - отмена проходит
	client := &fakeClient{booking: confirmedBookingAt(testNow.Add(3 * time.Hour))}
	svc := newTestService(client, nil)

	cancelled, err := svc.Cancel(context.Background(), "bk-1", "+15551234567")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, []string{"bk-1"}, client.cancelled)
}

func TestCancel_TooLate(t *testing.T) {
	// Визит через 30 минут при notice в час - отказ, UTC-моменты сравниваются
	// напрямую, таймзоны не участвуют
	client := &fakeClient{booking: confirmedBookingAt(testNow.Add(30 * time.Minute))}
	svc := newTestService(client, nil)

	_, err := svc.Cancel(context.Background(), "bk-1", "+15551234567")

	assert.ErrorIs(t, err, ErrTooLateToCancel)
	assert.Empty(t, client.cancelled)
}

func TestCancel_ExactCutoffAllowed(t *testing.T) {
	// Ровно час до начала: now+notice == starts_at, не "после" - отмена проходит
	client := &fakeClient{booking: confirmedBookingAt(testNow.Add(time.Hour))}
	svc := newTestService(client, nil)

	_, err := svc.Cancel(context.Background(), "bk-1", "+15551234567")
	require.NoError(t, err)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := confirmedBookingAt(testNow.Add(3 * time.Hour))
	booking.Status = domain.StatusCancelled
	svc := newTestService(&fakeClient{booking: booking}, nil)

	_, err := svc.Cancel(context.Background(), "bk-1", "+15551234567")

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetBooking_RequiresPhone(t *testing.T) {
	svc := newTestService(&fakeClient{}, nil)

	_, err := svc.GetBooking(context.Background(), "bk-1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListCustomerBookings(t *testing.T) {
	subs := &fakeSubmissions{records: []*domain.Submission{
		{BookingID: "bk-1", Phone: "+15551234567"},
		{BookingID: "bk-2", Phone: "+15551234567"},
	}}
	svc := newTestService(&fakeClient{}, subs)

	records, err := svc.ListCustomerBookings(context.Background(), "tavolina-12", "+15551234567")

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListCustomerBookings_NoJournalConfigured(t *testing.T) {
	svc := newTestService(&fakeClient{}, nil)

	records, err := svc.ListCustomerBookings(context.Background(), "tavolina-12", "+15551234567")

	require.NoError(t, err)
	assert.Empty(t, records)
}
