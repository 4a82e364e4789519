package telegram

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/application/alert/usecases"
	"vigia/internal/domain/reply"
	telegramInfra "vigia/internal/infrastructure/telegram"
	"vigia/internal/interfaces/http/handlers/testutil"
)

type mockHandleReplyUC struct {
	result  *usecases.HandleReplyResult
	err     error
	called  bool
	lastCmd usecases.HandleReplyCommand
}

func (m *mockHandleReplyUC) Execute(ctx context.Context, cmd usecases.HandleReplyCommand) (*usecases.HandleReplyResult, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

func webhookUpdate(chatID int64, text string, date int64) telegramInfra.Update {
	return telegramInfra.Update{
		UpdateID: 1001,
		Message: &telegramInfra.Message{
			MessageID: 55,
			From:      &telegramInfra.User{ID: chatID, FirstName: "Rafael", LastName: "Cabral"},
			Chat:      &telegramInfra.Chat{ID: chatID, Type: "private"},
			Date:      date,
			Text:      text,
		},
	}
}

func TestWebhookHandler_AcceptedReply(t *testing.T) {
	uc := &mockHandleReplyUC{
		result: &usecases.HandleReplyResult{Outcome: reply.OutcomeAccepted, ETAText: "16:30"},
	}
	handler := NewHandler(uc, "", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", webhookUpdate(6435800936, "16:30", 1756400000))

	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, uc.called)
	assert.Equal(t, int64(6435800936), uc.lastCmd.ChatID)
	assert.Equal(t, "16:30", uc.lastCmd.Text)
	assert.Equal(t, "Rafael Cabral", uc.lastCmd.SenderName)
	assert.Equal(t, int64(1756400000), uc.lastCmd.SentAt.Unix())
}

func TestWebhookHandler_SecretMismatch(t *testing.T) {
	uc := &mockHandleReplyUC{}
	handler := NewHandler(uc, "expected-secret", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", webhookUpdate(1, "16:30", 1756400000))
	c.Request.Header.Set("X-Telegram-Bot-Api-Secret-Token", "wrong")

	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, uc.called)
}

func TestWebhookHandler_SecretMatch(t *testing.T) {
	uc := &mockHandleReplyUC{
		result: &usecases.HandleReplyResult{Outcome: reply.OutcomeAccepted},
	}
	handler := NewHandler(uc, "expected-secret", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", webhookUpdate(1, "16:30", 1756400000))
	c.Request.Header.Set("X-Telegram-Bot-Api-Secret-Token", "expected-secret")

	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.called)
}

func TestWebhookHandler_IgnoresNonTextUpdates(t *testing.T) {
	uc := &mockHandleReplyUC{}
	handler := NewHandler(uc, "", testutil.NewMockLogger())

	update := telegramInfra.Update{UpdateID: 1002}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", update)

	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, uc.called)
}

func TestWebhookHandler_IgnoresEmptyText(t *testing.T) {
	uc := &mockHandleReplyUC{}
	handler := NewHandler(uc, "", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", webhookUpdate(1, "   ", 1756400000))

	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, uc.called)
}

func TestWebhookHandler_ProcessingErrorStillAcks(t *testing.T) {
	uc := &mockHandleReplyUC{err: assert.AnError}
	handler := NewHandler(uc, "", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", webhookUpdate(1, "16:30", 1756400000))

	handler.HandleWebhook(c)

	// Telegram retries non-2xx responses, so failures are acked.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandler_MalformedBody(t *testing.T) {
	uc := &mockHandleReplyUC{}
	handler := NewHandler(uc, "", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/telegram/webhook", "not an update")

	handler.HandleWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, uc.called)
}
