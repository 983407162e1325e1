package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

func TestFormatClock(t *testing.T) {
	testCases := []struct {
		in   time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{100 * time.Minute, "100:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, timeutil.FormatClock(tc.in))
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "25m", timeutil.FormatMinutes(25))
	assert.Equal(t, "1h 05m", timeutil.FormatMinutes(65))
	assert.Equal(t, "2h 00m", timeutil.FormatMinutes(120))
}

func TestDaysAgoAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// DST starts on 2024-03-10 in New York.
	now := time.Date(2024, 3, 12, 8, 30, 0, 0, loc)

	got := timeutil.DaysAgo(now, 3)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, loc), got)
}

func TestDayKeyRoundTrip(t *testing.T) {
	day := time.Date(2024, 1, 31, 17, 4, 0, 0, time.Local)

	key := timeutil.DayKey(day)
	assert.Equal(t, "2024-01-31", key)

	parsed, err := timeutil.ParseDayKey(key, time.Local)
	require.NoError(t, err)
	assert.True(t, timeutil.SameDay(parsed, day))
	assert.Equal(t, timeutil.RoundToStart(day), parsed)
}
