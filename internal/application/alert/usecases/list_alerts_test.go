package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/domain/alert"
	vo "vigia/internal/domain/alert/valueobjects"
	"vigia/internal/shared/biztime"
)

func TestListAlertsUseCase_Execute_GroupsByBucket(t *testing.T) {
	loc := biztime.Location()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	pending := unansweredAlert(t, 1, now.Add(-3*time.Hour))

	escalated := unansweredAlert(t, 2, now.Add(-2*time.Hour))
	require.NoError(t, escalated.AnswerETA("18:00", time.Date(2026, 3, 10, 18, 0, 0, 0, loc), "Rafael Cabral", now))

	overdue := unansweredAlert(t, 3, now.Add(-4*time.Hour))
	require.NoError(t, overdue.AnswerETA("10:00", time.Date(2026, 3, 10, 10, 0, 0, 0, loc), "Rafael Cabral", now))

	closed := unansweredAlert(t, 4, now.Add(-5*time.Hour))
	require.NoError(t, closed.AnswerETA("09:00", time.Date(2026, 3, 10, 9, 0, 0, 0, loc), "Rafael Cabral", now))
	require.NoError(t, closed.SetOperatingStatus(vo.StatusOperating, now.Add(-4*time.Hour)))

	mockRepo := &mockAlertRepository{
		ListAllFunc: func(ctx context.Context) ([]*alert.Alert, error) {
			return []*alert.Alert{pending, escalated, overdue, closed}, nil
		},
	}

	uc := NewListAlertsUseCase(mockRepo, &mockLogger{})
	uc.nowFn = func() time.Time { return now }

	board, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, board.Total)
	require.Len(t, board.Pending, 1)
	require.Len(t, board.Escalated, 1)
	require.Len(t, board.Overdue, 1)
	require.Len(t, board.Closed, 1)

	assert.Equal(t, uint(1), board.Pending[0].ID)
	assert.Equal(t, "pending", board.Pending[0].Bucket)
	assert.Equal(t, uint(2), board.Escalated[0].ID)
	assert.Equal(t, "18:00", board.Escalated[0].ETAText)
	assert.Equal(t, uint(3), board.Overdue[0].ID)
	assert.Equal(t, uint(4), board.Closed[0].ID)
	assert.Equal(t, "escalated", board.Closed[0].ClosedFrom)
	assert.True(t, now.Equal(board.Now))
}

func TestListAlertsUseCase_Execute_EmptyBoard(t *testing.T) {
	uc := NewListAlertsUseCase(&mockAlertRepository{}, &mockLogger{})

	board, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, board.Total)
	assert.Empty(t, board.Pending)
}

func TestListAlertsUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockAlertRepository{
		ListAllFunc: func(ctx context.Context) ([]*alert.Alert, error) {
			return nil, errors.New("database unavailable")
		},
	}

	uc := NewListAlertsUseCase(mockRepo, &mockLogger{})

	board, err := uc.Execute(context.Background())

	assert.Error(t, err)
	assert.Nil(t, board)
}
