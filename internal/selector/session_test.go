package selector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

func newTestSession(t *testing.T) (*Session, *fakeTimeProvider) {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Tirane")
	require.NoError(t, err)
	tp := &fakeTimeProvider{now: time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)}
	return NewSession("sess-1", "tavolina-12", "svc-dinner", loc, tp), tp
}

func matrixWith(starts ...time.Time) *domain.AvailabilityMatrix {
	slots := make([]domain.AvailabilitySlot, len(starts))
	for i, s := range starts {
		slots[i] = domain.AvailabilitySlot{StartsAt: s, EndsAt: s.Add(time.Hour)}
	}
	return &domain.AvailabilityMatrix{Slots: slots, BusinessTimezone: "America/New_York"}
}

func TestNewSession_Defaults(t *testing.T) {
	s, _ := newTestSession(t)
	snap := s.Snapshot()

	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 1, snap.PartySize)
	// 10:00 UTC on March 8 is already March 8 in Tirane (UTC+1)
	assert.Equal(t, "2025-03-08", snap.Date.Format(domain.DateFormat))
}

func TestSelectDate_RejectsPastDate(t *testing.T) {
	s, _ := newTestSession(t)
	before := s.Snapshot()

	_, err := s.SelectDate(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrPastDate)
	// Отклоненный переход не меняет состояние.
	after := s.Snapshot()
	assert.Equal(t, before.State, after.State)
	assert.Equal(t, before.Date, after.Date)
	assert.Equal(t, before.Generation, after.Generation)
}

func TestSelectDate_TodayIsAllowed(t *testing.T) {
	s, _ := newTestSession(t)

	gen, err := s.SelectDate(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, StateLoading, s.Snapshot().State)
}

func TestSelectPartySize_RejectsZero(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.SelectPartySize(0)

	assert.ErrorIs(t, err, ErrInvalidPartySize)
	assert.Equal(t, 1, s.Snapshot().PartySize)
}

func TestSelectPartySize_RejectsAboveMax(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.SelectPartySize(domain.MaxPartySize + 1)

	assert.ErrorIs(t, err, ErrInvalidPartySize)
	assert.Equal(t, 1, s.Snapshot().PartySize)
}

func TestSelectDate_ClearsSelectedSlot(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))
	require.NoError(t, s.SelectSlot(slotStart))
	require.NotNil(t, s.Snapshot().SelectedSlot)

	_, err = s.SelectDate(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Nil(t, snap.SelectedSlot)
	assert.Nil(t, snap.Matrix)
}

func TestApplyFetchResult_RevalidatesSelectedSlot(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	otherStart := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart, otherStart), nil, nil))
	require.NoError(t, s.SelectSlot(slotStart))

	// Свежий fetch без выбранного слота: кто-то успел его забронировать.
	gen = s.BeginFetch()
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(otherStart), nil, nil))

	snap := s.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Nil(t, snap.SelectedSlot, "vanished slot must be silently deselected")
}

func TestApplyFetchResult_KeepsSelectionWhenSlotSurvives(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))
	require.NoError(t, s.SelectSlot(slotStart))

	gen = s.BeginFetch()
	assert.ErrorIs(t, s.SelectSlot(slotStart), ErrNotLoaded)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))

	// Refetch с теми же параметрами: слот все еще в матрице, выбор остается.
	snap := s.Snapshot()
	require.NotNil(t, snap.SelectedSlot)
	assert.True(t, snap.SelectedSlot.StartsAt.Equal(slotStart))
}

func TestSelectPartySize_ClearsSelectedSlot(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))
	require.NoError(t, s.SelectSlot(slotStart))

	_, err = s.SelectPartySize(4)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Nil(t, snap.SelectedSlot)
}

func TestApplyFetchResult_OutOfOrderResponsesLastRequestWins(t *testing.T) {
	s, _ := newTestSession(t)
	slotA := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	slotB := time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC)

	genA, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	genB, err := s.SelectDate(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Ответ B разрешается первым, ответ A приходит позже.
	require.NoError(t, s.ApplyFetchResult(genB, matrixWith(slotB), nil, nil))
	err = s.ApplyFetchResult(genA, matrixWith(slotA), nil, nil)

	assert.ErrorIs(t, err, ErrStaleGeneration)
	snap := s.Snapshot()
	require.NotNil(t, snap.Matrix)
	require.Len(t, snap.Matrix.Slots, 1)
	assert.True(t, snap.Matrix.Slots[0].StartsAt.Equal(slotB), "final slots must be B's, never A's")
}

func TestApplyFetchResult_FailureClearsSlotsAndSelection(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))
	require.NoError(t, s.SelectSlot(slotStart))

	gen = s.BeginFetch()
	require.NoError(t, s.ApplyFetchResult(gen, nil, nil, errors.New("upstream unavailable")))

	snap := s.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Empty(t, snap.Matrix.Slots)
	assert.Nil(t, snap.SelectedSlot)
	assert.NotEmpty(t, snap.LastError)
}

func TestSelectSlot_RejectsSlotOutsideMatrix(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))

	err = s.SelectSlot(time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrSlotNotInMatrix)
	assert.Nil(t, s.Snapshot().SelectedSlot)
}

func TestDraft_RequiresSelectedSlot(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Draft()

	assert.ErrorIs(t, err, ErrNoSlotSelected)
}

func TestDraft_CarriesSelectionAndTimezone(t *testing.T) {
	s, _ := newTestSession(t)
	slotStart := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	gen, err := s.SelectDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = s.SelectPartySize(2)
	require.NoError(t, err)
	gen = s.Snapshot().Generation
	require.NoError(t, s.ApplyFetchResult(gen, matrixWith(slotStart), nil, nil))
	require.NoError(t, s.SelectSlot(slotStart))

	draft, err := s.Draft()

	require.NoError(t, err)
	assert.Equal(t, "tavolina-12", draft.BusinessSlug)
	assert.Equal(t, "svc-dinner", draft.ServiceID)
	assert.Equal(t, "2025-03-10", draft.LocalDate)
	assert.Equal(t, 2, draft.PartySize)
	assert.Equal(t, "America/New_York", draft.BusinessTimezone)
	assert.True(t, draft.Slot.StartsAt.Equal(slotStart))
	assert.True(t, draft.Slot.EndsAt.Equal(slotStart.Add(time.Hour)))
}

func TestManager_GetDeleteAndSweep(t *testing.T) {
	tp := &fakeTimeProvider{now: time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)}
	m := NewManager(30*time.Minute, tp, nil)

	s := NewSession("sess-1", "tavolina-12", "svc-dinner", time.UTC, tp)
	m.Put(s)

	got, err := m.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Сессия простаивает дольше TTL - sweep её убирает.
	tp.now = tp.now.Add(31 * time.Minute)
	m.sweep()
	_, err = m.Get("sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Len())
}
