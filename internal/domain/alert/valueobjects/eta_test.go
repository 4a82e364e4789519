package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/shared/biztime"
)

func TestParseETA_SameDay(t *testing.T) {
	loc := biztime.Location()
	sentAt := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)
	now := sentAt

	eta, err := ParseETA("16:30", sentAt, now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 16, 30, 0, 0, loc), eta)
}

func TestParseETA_RollsToNextDayWhenNotInFuture(t *testing.T) {
	loc := biztime.Location()
	sentAt := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)
	now := sentAt

	tests := []struct {
		name     string
		text     string
		expected time.Time
	}{
		{"clock earlier than now", "09:00", time.Date(2026, 3, 11, 9, 0, 0, 0, loc)},
		{"clock equal to now", "14:00", time.Date(2026, 3, 11, 14, 0, 0, 0, loc)},
		{"one minute ahead stays today", "14:01", time.Date(2026, 3, 10, 14, 1, 0, 0, loc)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eta, err := ParseETA(tc.text, sentAt, now)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, eta)
		})
	}
}

func TestParseETA_DateComesFromSendTimestamp(t *testing.T) {
	loc := biztime.Location()
	// Reply sent just before midnight, processed just after.
	sentAt := time.Date(2026, 3, 10, 23, 58, 0, 0, loc)
	now := time.Date(2026, 3, 11, 0, 1, 0, 0, loc)

	eta, err := ParseETA("23:59", sentAt, now)

	require.NoError(t, err)
	// 23:59 on the send date is already behind now, so it rolls forward.
	assert.Equal(t, time.Date(2026, 3, 11, 23, 59, 0, 0, loc), eta)
}

func TestParseETA_MidnightReply(t *testing.T) {
	loc := biztime.Location()
	sentAt := time.Date(2026, 3, 10, 22, 0, 0, 0, loc)
	now := sentAt

	eta, err := ParseETA("00:00", sentAt, now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), eta)
}

func TestParseETA_RejectsMalformedText(t *testing.T) {
	loc := biztime.Location()
	sentAt := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	tests := []string{
		"",
		"1630",
		"4pm",
		"16:3",
		"6:30",
		"16:300",
		"16:30:00",
		" 16:30",
		"16:30 ",
		"amanhã 16:30",
		"16h30",
	}

	for _, text := range tests {
		t.Run("text "+text, func(t *testing.T) {
			_, err := ParseETA(text, sentAt, sentAt)
			assert.Error(t, err)
		})
	}
}

func TestParseETA_RejectsOutOfRangeClock(t *testing.T) {
	loc := biztime.Location()
	sentAt := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	tests := []string{"24:00", "25:10", "99:99", "12:60"}

	for _, text := range tests {
		t.Run("text "+text, func(t *testing.T) {
			_, err := ParseETA(text, sentAt, sentAt)
			assert.Error(t, err)
		})
	}
}
