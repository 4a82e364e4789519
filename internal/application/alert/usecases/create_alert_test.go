package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/domain/alert"
	"vigia/internal/shared/biztime"
)

func TestCreateAlertUseCase_Execute_Success(t *testing.T) {
	loc := biztime.Location()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	var saved *alert.Alert
	mockRepo := &mockAlertRepository{
		SaveFunc: func(ctx context.Context, a *alert.Alert) error {
			require.NoError(t, a.SetID(100))
			saved = a
			return nil
		},
	}
	notifier := &mockNotifier{
		PromptForETAFunc: func(ctx context.Context, chatID string, description string) (int64, error) {
			assert.Equal(t, "6435800936", chatID)
			return 777, nil
		},
	}

	uc := NewCreateAlertUseCase(mockRepo, notifier, leaderChatID, "Rafael Cabral", &mockLogger{})
	uc.nowFn = func() time.Time { return now }

	result, err := uc.Execute(context.Background(), CreateAlertCommand{
		Description: "Colhedora 08 parada na frente 2",
		Unit:        "UBT",
		Equipment:   "Colhedora 08",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.AlertID)
	assert.Equal(t, "6435800936", result.Recipient)
	require.NotNil(t, result.MessageID)
	assert.Equal(t, int64(777), *result.MessageID)
	assert.True(t, now.Equal(result.CreatedAt))

	require.NotNil(t, saved)
	assert.Equal(t, "Rafael Cabral", saved.ResponsibleName())
	assert.Equal(t, "UBT", saved.Descriptor().Unit)
	assert.False(t, saved.HasETA())
}

func TestCreateAlertUseCase_Execute_PromptFailureStillCreates(t *testing.T) {
	loc := biztime.Location()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	mockRepo := &mockAlertRepository{
		SaveFunc: func(ctx context.Context, a *alert.Alert) error {
			return a.SetID(1)
		},
	}
	notifier := &mockNotifier{
		PromptForETAFunc: func(ctx context.Context, chatID string, description string) (int64, error) {
			return 0, errors.New("telegram unreachable")
		},
	}

	uc := NewCreateAlertUseCase(mockRepo, notifier, leaderChatID, "Rafael Cabral", &mockLogger{})
	uc.nowFn = func() time.Time { return now }

	result, err := uc.Execute(context.Background(), CreateAlertCommand{Description: "Falha no transbordo"})

	require.NoError(t, err, "alert creation must not depend on chat delivery")
	assert.Equal(t, uint(1), result.AlertID)
	assert.Nil(t, result.MessageID)
}

func TestCreateAlertUseCase_Execute_ValidationFailure(t *testing.T) {
	uc := NewCreateAlertUseCase(&mockAlertRepository{}, &mockNotifier{}, leaderChatID, "Rafael Cabral", &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateAlertCommand{Description: ""})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCreateAlertUseCase_Execute_SaveFailure(t *testing.T) {
	mockRepo := &mockAlertRepository{
		SaveFunc: func(ctx context.Context, a *alert.Alert) error {
			return errors.New("database unavailable")
		},
	}
	promptSent := false
	notifier := &mockNotifier{
		PromptForETAFunc: func(ctx context.Context, chatID string, description string) (int64, error) {
			promptSent = true
			return 0, nil
		},
	}

	uc := NewCreateAlertUseCase(mockRepo, notifier, leaderChatID, "Rafael Cabral", &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateAlertCommand{Description: "Falha"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, promptSent, "no prompt goes out for an alert that was never stored")
}
