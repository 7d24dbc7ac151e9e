package sessions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/selector"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
	"github.com/johnpapajani/rezi-booking-gateway/internal/usecase/check_availability"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fakeFetcher struct {
	resp     *check_availability.Response
	err      error
	requests []*check_availability.Request
}

func (f *fakeFetcher) Execute(_ context.Context, req *check_availability.Request) (*check_availability.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeDraftStore struct {
	saved []*domain.BookingDraft
	err   error
}

func (f *fakeDraftStore) Save(_ context.Context, d *domain.BookingDraft) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, d)
	return nil
}

var testNow = time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

func slotAt(hour int) domain.AvailabilitySlot {
	start := time.Date(2025, 3, 8, hour, 0, 0, 0, time.UTC)
	return domain.AvailabilitySlot{StartsAt: start, EndsAt: start.Add(time.Hour)}
}

func availResponse(slots ...domain.AvailabilitySlot) *check_availability.Response {
	return &check_availability.Response{
		Matrix: &domain.AvailabilityMatrix{
			Slots:            slots,
			BusinessTimezone: "America/New_York",
		},
		Resources: []domain.Resource{
			{ID: "t2", Code: "T-2", Seats: 2, Active: true},
			{ID: "t4", Code: "T-4", Seats: 4, Active: true},
		},
	}
}

func newTestService(fetcher *fakeFetcher, store *fakeDraftStore) *Service {
	svc := NewService(fetcher, selector.NewManager(30*time.Minute, &fakeTime{now: testNow}, nil), store, 15*time.Minute, nopLogger{})
	svc.timeProvider = &fakeTime{now: testNow}
	svc.ids = &seqIDs{}
	return svc
}

func startSession(t *testing.T, svc *Service) string {
	t.Helper()
	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{
		BusinessSlug: "tavolina-12",
		ServiceID:    "svc-dinner",
	})
	require.NoError(t, err)
	return resp.SessionID
}

func TestStart_FetchesTodayForPartyOfOne(t *testing.T) {
	fetcher := &fakeFetcher{resp: availResponse(slotAt(17), slotAt(18))}
	svc := newTestService(fetcher, &fakeDraftStore{})

	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{
		BusinessSlug: "tavolina-12",
		ServiceID:    "svc-dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, string(selector.StateLoaded), resp.State)
	assert.Equal(t, "2025-03-08", resp.Date)
	assert.Equal(t, 1, resp.PartySize)
	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, "America/New_York", resp.Timezone)

	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, "2025-03-08", fetcher.requests[0].Date)
	assert.Equal(t, 1, fetcher.requests[0].PartySize)
}

func TestStart_RejectsUnknownTimezone(t *testing.T) {
	svc := newTestService(&fakeFetcher{resp: availResponse()}, &fakeDraftStore{})

	_, err := svc.Start(context.Background(), &models.StartSessionRequest{
		BusinessSlug:   "tavolina-12",
		ServiceID:      "svc-dinner",
		ViewerTimezone: "Mars/Olympus",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStart_FetchFailureYieldsEmptySlots(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	svc := newTestService(fetcher, &fakeDraftStore{})

	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{
		BusinessSlug: "tavolina-12",
		ServiceID:    "svc-dinner",
	})

	require.NoError(t, err)
	assert.Equal(t, string(selector.StateFailed), resp.State)
	assert.Empty(t, resp.Slots)
	assert.NotEmpty(t, resp.LastError)
}

func TestUpdateSelection_PastDateRejectedWithoutMutation(t *testing.T) {
	fetcher := &fakeFetcher{resp: availResponse(slotAt(17))}
	svc := newTestService(fetcher, &fakeDraftStore{})
	id := startSession(t, svc)

	_, err := svc.UpdateSelection(context.Background(), &models.UpdateSelectionRequest{
		SessionID: id,
		Date:      ptr.Ptr("2025-03-07"),
	})
	require.ErrorIs(t, err, ErrPastDate)

	// Состояние не тронуто, повторного fetch не было
	resp, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-08", resp.Date)
	assert.Len(t, fetcher.requests, 1)
}

func TestUpdateSelection_DateChangeRefetchesAndClearsSelection(t *testing.T) {
	fetcher := &fakeFetcher{resp: availResponse(slotAt(17))}
	svc := newTestService(fetcher, &fakeDraftStore{})
	id := startSession(t, svc)

	_, err := svc.SelectSlot(context.Background(), &models.SelectSlotRequest{
		SessionID: id,
		StartsAt:  slotAt(17).StartsAt,
	})
	require.NoError(t, err)

	resp, err := svc.UpdateSelection(context.Background(), &models.UpdateSelectionRequest{
		SessionID: id,
		Date:      ptr.Ptr("2025-03-09"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-09", resp.Date)
	assert.Nil(t, resp.SelectedSlot, "date change must clear the selected slot")
	require.Len(t, fetcher.requests, 2)
	assert.Equal(t, "2025-03-09", fetcher.requests[1].Date)
}

func TestUpdateSelection_PartySizeValidatedBeforeMutation(t *testing.T) {
	fetcher := &fakeFetcher{resp: availResponse(slotAt(17))}
	svc := newTestService(fetcher, &fakeDraftStore{})
	id := startSession(t, svc)

	_, err := svc.UpdateSelection(context.Background(), &models.UpdateSelectionRequest{
		SessionID: id,
		Date:      ptr.Ptr("2025-03-09"),
		PartySize: ptr.Ptr(0),
	})
	require.ErrorIs(t, err, ErrInvalidPartySize)

	// Невалидная группа отклонила весь запрос: дата тоже не применилась
	resp, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-08", resp.Date)
	assert.Len(t, fetcher.requests, 1)
}

func TestUpdateSelection_EmptyRequestRetriesFetch(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	svc := newTestService(fetcher, &fakeDraftStore{})
	id := startSession(t, svc)

	fetcher.err = nil
	fetcher.resp = availResponse(slotAt(17))

	resp, err := svc.UpdateSelection(context.Background(), &models.UpdateSelectionRequest{SessionID: id})
	require.NoError(t, err)
	assert.Equal(t, string(selector.StateLoaded), resp.State)
	assert.Len(t, resp.Slots, 1)
}

func TestSelectSlot_OutsideMatrixRejected(t *testing.T) {
	svc := newTestService(&fakeFetcher{resp: availResponse(slotAt(17))}, &fakeDraftStore{})
	id := startSession(t, svc)

	_, err := svc.SelectSlot(context.Background(), &models.SelectSlotRequest{
		SessionID: id,
		StartsAt:  slotAt(23).StartsAt,
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestProceed_AssignsFirstFitAndStoresDraft(t *testing.T) {
	store := &fakeDraftStore{}
	svc := newTestService(&fakeFetcher{resp: availResponse(slotAt(17))}, store)
	id := startSession(t, svc)

	_, err := svc.UpdateSelection(context.Background(), &models.UpdateSelectionRequest{
		SessionID: id,
		PartySize: ptr.Ptr(3),
	})
	require.NoError(t, err)
	_, err = svc.SelectSlot(context.Background(), &models.SelectSlotRequest{
		SessionID: id,
		StartsAt:  slotAt(17).StartsAt,
	})
	require.NoError(t, err)

	resp, err := svc.Proceed(context.Background(), id)
	require.NoError(t, err)

	// t2 не вмещает троих, first-fit берет t4
	assert.Equal(t, "t4", resp.TableID)
	assert.Equal(t, "T-4", resp.TableCode)
	assert.NotEmpty(t, resp.DraftToken)
	assert.Equal(t, testNow.Add(15*time.Minute), resp.ExpiresAt)

	require.Len(t, store.saved, 1)
	draft := store.saved[0]
	assert.Equal(t, resp.DraftToken, draft.Token)
	require.NotNil(t, draft.TableID)
	assert.Equal(t, "t4", *draft.TableID)
	assert.Equal(t, 3, draft.PartySize)
	assert.Equal(t, "2025-03-08", draft.LocalDate)
	assert.Equal(t, "America/New_York", draft.BusinessTimezone)
	assert.True(t, draft.Slot.StartsAt.Equal(slotAt(17).StartsAt))
}

func TestProceed_NoFittingTableStoresDraftWithoutTable(t *testing.T) {
	store := &fakeDraftStore{}
	resp := availResponse(slotAt(17))
	resp.Resources = nil
	svc := newTestService(&fakeFetcher{resp: resp}, store)
	id := startSession(t, svc)

	_, err := svc.SelectSlot(context.Background(), &models.SelectSlotRequest{
		SessionID: id,
		StartsAt:  slotAt(17).StartsAt,
	})
	require.NoError(t, err)

	proceed, err := svc.Proceed(context.Background(), id)
	require.NoError(t, err)

	assert.Empty(t, proceed.TableID)
	require.Len(t, store.saved, 1)
	assert.Nil(t, store.saved[0].TableID)
}

func TestProceed_RequiresSelectedSlot(t *testing.T) {
	svc := newTestService(&fakeFetcher{resp: availResponse(slotAt(17))}, &fakeDraftStore{})
	id := startSession(t, svc)

	_, err := svc.Proceed(context.Background(), id)
	assert.ErrorIs(t, err, ErrNoSlotSelected)
}

func TestUnknownSession(t *testing.T) {
	svc := newTestService(&fakeFetcher{resp: availResponse()}, &fakeDraftStore{})

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Proceed(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
