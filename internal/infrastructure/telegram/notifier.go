package telegram

import (
	"context"
	"fmt"
	"strconv"

	"vigia/internal/shared/logger"
)

// Notifier adapts BotService to the alert lifecycle messages.
type Notifier struct {
	bot    *BotService
	logger logger.Interface
}

func NewNotifier(bot *BotService, logger logger.Interface) *Notifier {
	return &Notifier{bot: bot, logger: logger}
}

func (n *Notifier) PromptForETA(ctx context.Context, chatID string, description string) (int64, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}

	messageID, err := n.bot.SendMessage(ctx, id, etaPromptMessage(description))
	if err != nil {
		return 0, err
	}

	n.logger.Debugw("deadline prompt sent", "chat_id", id, "message_id", messageID)
	return messageID, nil
}

func (n *Notifier) ConfirmETA(ctx context.Context, chatID int64, etaText string, remaining int64) error {
	_, err := n.bot.SendMessage(ctx, chatID, etaConfirmationMessage(etaText, remaining))
	return err
}

func (n *Notifier) RejectFormat(ctx context.Context, chatID int64) error {
	_, err := n.bot.SendMessage(ctx, chatID, invalidFormatMessage)
	return err
}

func (n *Notifier) NotifyNothingPending(ctx context.Context, chatID int64) error {
	_, err := n.bot.SendMessage(ctx, chatID, nothingPendingMessage)
	return err
}
