package check_availability

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

type fakeClient struct {
	matrix    *domain.AvailabilityMatrix
	tables    []domain.Resource
	matrixErr error
	tablesErr error

	availabilityCalls int
	tablesCalls       int
}

func (f *fakeClient) CheckAvailability(_ context.Context, _, _, _ string, _ int) (*domain.AvailabilityMatrix, error) {
	f.availabilityCalls++
	if f.matrixErr != nil {
		return nil, f.matrixErr
	}
	return f.matrix, nil
}

func (f *fakeClient) GetServiceTables(_ context.Context, _, _ string) ([]domain.Resource, error) {
	f.tablesCalls++
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tables, nil
}

func validRequest() *Request {
	return &Request{
		BusinessSlug: "tavolina-12",
		ServiceID:    "svc-dinner",
		Date:         "2025-03-10",
		PartySize:    2,
	}
}

func TestExecute_FiltersTablesByCapacityPreservingOrder(t *testing.T) {
	slot := domain.AvailabilitySlot{
		StartsAt: time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
	}
	client := &fakeClient{
		matrix: &domain.AvailabilityMatrix{
			Slots:            []domain.AvailabilitySlot{slot},
			BusinessTimezone: "America/New_York",
		},
		tables: []domain.Resource{
			{ID: "t6", Seats: 6, Active: true},
			{ID: "t1", Seats: 1, Active: true},
			{ID: "t4", Seats: 4, Active: true},
		},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", resp.Matrix.BusinessTimezone)
	require.Len(t, resp.Resources, 2)
	assert.Equal(t, "t6", resp.Resources[0].ID)
	assert.Equal(t, "t4", resp.Resources[1].ID)
}

func TestExecute_ValidationRejectsBadInput(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, nopLogger{})

	cases := map[string]*Request{
		"empty slug":      {ServiceID: "s", Date: "2025-03-10", PartySize: 1},
		"empty service":   {BusinessSlug: "b", Date: "2025-03-10", PartySize: 1},
		"empty date":      {BusinessSlug: "b", ServiceID: "s", PartySize: 1},
		"bad date":        {BusinessSlug: "b", ServiceID: "s", Date: "2025-02-30", PartySize: 1},
		"zero party size": {BusinessSlug: "b", ServiceID: "s", Date: "2025-03-10", PartySize: 0},
		"huge party size": {BusinessSlug: "b", ServiceID: "s", Date: "2025-03-10", PartySize: domain.MaxPartySize + 1},
	}

	for name, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}

func TestExecute_UpstreamFailureReturnsNoSlots(t *testing.T) {
	client := &fakeClient{matrixErr: errors.New("connection refused")}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp, "no stale slots may survive a failed fetch")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_TablesFailureFailsWholeRequest(t *testing.T) {
	client := &fakeClient{
		matrix:    &domain.AvailabilityMatrix{BusinessTimezone: "UTC"},
		tablesErr: errors.New("timeout"),
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_MapsNotFoundErrors(t *testing.T) {
	client := &fakeClient{matrixErr: reserveapi.ErrBusinessNotFound}
	uc := NewUseCase(client, nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	client = &fakeClient{matrixErr: reserveapi.ErrServiceNotFound}
	uc = NewUseCase(client, nopLogger{})
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
