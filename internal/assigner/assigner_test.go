package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

func table(id string, seats int) domain.Resource {
	return domain.Resource{ID: id, Code: id, Seats: seats, Active: true}
}

func TestFirstFit_PicksFirstSufficientNotSmallest(t *testing.T) {
	resources := []domain.Resource{
		table("t2", 2),
		table("t4", 4),
		table("t6", 6),
	}

	got, err := FirstFit(resources, 3)

	require.NoError(t, err)
	assert.Equal(t, "t4", got.ID)
}

func TestFirstFit_DoesNotSortBySeatCount(t *testing.T) {
	// Стол на 6 мест стоит раньше стола на 4 - должен выбраться он,
	// а не минимально достаточный.
	resources := []domain.Resource{
		table("t6", 6),
		table("t4", 4),
	}

	got, err := FirstFit(resources, 3)

	require.NoError(t, err)
	assert.Equal(t, "t6", got.ID)
}

func TestFirstFit_NoResourceAvailable(t *testing.T) {
	resources := []domain.Resource{
		table("t2a", 2),
		table("t2b", 2),
	}

	got, err := FirstFit(resources, 5)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoResourceAvailable)
}

func TestFirstFit_SkipsInactive(t *testing.T) {
	inactive := table("t8", 8)
	inactive.Active = false
	resources := []domain.Resource{
		inactive,
		table("t4", 4),
	}

	got, err := FirstFit(resources, 4)

	require.NoError(t, err)
	assert.Equal(t, "t4", got.ID)
}

func TestFirstFit_EmptyList(t *testing.T) {
	got, err := FirstFit(nil, 1)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoResourceAvailable)
}

func TestEligible_PreservesUpstreamOrder(t *testing.T) {
	resources := []domain.Resource{
		table("t6", 6),
		table("t2", 2),
		table("t4", 4),
	}

	got := Eligible(resources, 3)

	require.Len(t, got, 2)
	assert.Equal(t, "t6", got[0].ID)
	assert.Equal(t, "t4", got[1].ID)
}

func TestEligible_ExactCapacityMatch(t *testing.T) {
	got := Eligible([]domain.Resource{table("t4", 4)}, 4)

	require.Len(t, got, 1)
	assert.Equal(t, "t4", got[0].ID)
}
