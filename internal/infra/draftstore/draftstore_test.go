package draftstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/ptr"
)

func testDraft() *domain.BookingDraft {
	start := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	return &domain.BookingDraft{
		Token:        "tok-1",
		BusinessSlug: "tavolina-12",
		ServiceID:    "svc-dinner",
		LocalDate:    "2025-03-10",
		Slot: domain.AvailabilitySlot{
			StartsAt: start,
			EndsAt:   start.Add(time.Hour),
		},
		PartySize:        2,
		TableID:          ptr.Ptr("t4"),
		BusinessTimezone: "America/New_York",
		CreatedAt:        time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, 15*time.Minute)

	draft := testDraft()
	payload, err := json.Marshal(draft)
	require.NoError(t, err)

	mock.ExpectSet("draft:tok-1", payload, 15*time.Minute).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), draft))

	mock.ExpectGet("draft:tok-1").SetVal(string(payload))
	got, err := store.Get(context.Background(), "tok-1")
	require.NoError(t, err)

	assert.Equal(t, draft.Token, got.Token)
	assert.Equal(t, draft.LocalDate, got.LocalDate)
	assert.True(t, got.Slot.StartsAt.Equal(draft.Slot.StartsAt))
	require.NotNil(t, got.TableID)
	assert.Equal(t, "t4", *got.TableID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ExpiredToken(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, 15*time.Minute)

	mock.ExpectGet("draft:gone").RedisNil()

	_, err := store.Get(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrDraftNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingTokenIsNotAnError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, 15*time.Minute)

	mock.ExpectDel("draft:gone").SetVal(0)

	assert.NoError(t, store.Delete(context.Background(), "gone"))
	require.NoError(t, mock.ExpectationsWereMet())
}
