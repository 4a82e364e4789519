package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/domain/reply"
	"vigia/internal/shared/biztime"
)

func TestReplyRepository_SaveAndListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()
	loc := biztime.Location()

	base := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)
	alertID := uint(7)
	outcomes := []struct {
		text    string
		outcome reply.Outcome
		alertID *uint
		at      time.Time
	}{
		{"16:30", reply.OutcomeAccepted, &alertID, base},
		{"amanhã", reply.OutcomeInvalidFormat, nil, base.Add(time.Minute)},
		{"17:00", reply.OutcomeNoPending, nil, base.Add(2 * time.Minute)},
	}

	for _, o := range outcomes {
		entry, err := reply.NewReply(6435800936, "Rafael Cabral", o.text, o.outcome, o.alertID, o.at)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, entry))
		assert.NotZero(t, entry.ID())
	}

	t.Run("newest first", func(t *testing.T) {
		replies, err := repo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, replies, 3)
		assert.Equal(t, reply.OutcomeNoPending, replies[0].Outcome())
		assert.Equal(t, reply.OutcomeAccepted, replies[2].Outcome())
		require.NotNil(t, replies[2].AlertID())
		assert.Equal(t, uint(7), *replies[2].AlertID())
		assert.True(t, base.Equal(replies[2].ReceivedAt()))
	})

	t.Run("limit applies", func(t *testing.T) {
		replies, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, replies, 2)
	})
}

func TestAutoAlertConfigRepository_GetCreatesDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAutoAlertConfigRepository(db)
	ctx := context.Background()

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
	assert.Equal(t, 3, cfg.IntervalMinutes())
	assert.NotZero(t, cfg.ID())

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID(), again.ID(), "the singleton row is reused")
}

func TestAutoAlertConfigRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAutoAlertConfigRepository(db)
	ctx := context.Background()

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)

	now := biztime.Now()
	cfg.SetEnabled(true, now)
	require.NoError(t, cfg.SetIntervalMinutes(10, now))
	require.NoError(t, repo.Update(ctx, cfg))

	reloaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.Enabled())
	assert.Equal(t, 10, reloaded.IntervalMinutes())

	cfg.SetEnabled(false, now.Add(time.Minute))
	require.NoError(t, repo.Update(ctx, cfg))

	reloaded, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, reloaded.Enabled(), "disabling must persist despite being the zero value")
}
