package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate_RoundTripsAcrossOffsetSigns(t *testing.T) {
	dates := []string{"2025-01-01", "2025-03-10", "2025-12-31", "2024-02-29"}
	// Одна зона с отрицательным смещением, одна с положительным: наивный
	// UTC-парсинг "YYYY-MM-DD" сдвинул бы дату назад в первой из них.
	zones := []string{"America/New_York", "Europe/Tirane"}

	for _, zone := range zones {
		loc, err := time.LoadLocation(zone)
		require.NoError(t, err)
		for _, s := range dates {
			parsed, err := ParseLocalDate(s, loc)
			require.NoError(t, err)
			assert.Equal(t, s, FormatLocalDate(parsed), "zone %s", zone)
			assert.Equal(t, 0, parsed.Hour())
		}
	}
}

func TestParseLocalDate_RejectsInvalidDates(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "2025-02-30", "not-a-date", "2025/03/10"} {
		_, err := ParseLocalDate(s, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", s)
	}
}

func TestFormatTimeInZone_ResolvesAgainstBusinessZone(t *testing.T) {
	// 17:00 UTC on 2025-03-10 is 12:00 PM in New York (EST, UTC-5 on that
	// date) no matter where the process runs.
	utc := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	got, err := FormatTimeInZone(utc, "America/New_York")

	require.NoError(t, err)
	assert.Equal(t, "12:00 PM", got)
}

func TestFormatTimeInZone_PositiveOffset(t *testing.T) {
	utc := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	got, err := FormatTimeInZone(utc, "Europe/Tirane")

	require.NoError(t, err)
	assert.Equal(t, "6:00 PM", got)
}

func TestFormatDateInZone_CrossesMidnight(t *testing.T) {
	// 03:00 UTC is still the previous evening in New York.
	utc := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)

	got, err := FormatDateInZone(utc, "America/New_York")

	require.NoError(t, err)
	assert.Equal(t, "Sunday, March 9, 2025", got)
}

func TestFormatDateTimeInZone(t *testing.T) {
	utc := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	got, err := FormatDateTimeInZone(utc, "America/New_York")

	require.NoError(t, err)
	assert.Equal(t, "Monday, March 10, 2025 at 12:00 PM", got)
}

func TestLoadZone_InvalidIdentifierIsConfigurationError(t *testing.T) {
	for _, zone := range []string{"", "Mars/Olympus", "America/NotACity"} {
		_, err := LoadZone(zone)
		assert.ErrorIs(t, err, ErrInvalidTimezone, "zone %q", zone)
	}

	_, err := FormatTimeInZone(time.Now(), "Mars/Olympus")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
