package usecases

import (
	"context"
	"strings"
	"time"

	"vigia/internal/domain/alert"
	vo "vigia/internal/domain/alert/valueobjects"
	"vigia/internal/domain/reply"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/config"
	"vigia/internal/shared/logger"
)

type HandleReplyCommand struct {
	ChatID     int64
	SenderName string
	Text       string
	// SentAt is the chat message's own timestamp. The deadline's calendar
	// date comes from it, not from processing time.
	SentAt time.Time
}

type HandleReplyResult struct {
	Outcome   reply.Outcome
	AlertID   *uint
	ETAText   string
	ETAAt     *time.Time
	Remaining int64
}

// HandleReplyUseCase processes one inbound chat message. A valid HH:MM reply
// claims the oldest alert that has no deadline yet; the claim runs under a
// row lock so concurrent replies from the same chat never answer the same
// alert twice.
type HandleReplyUseCase struct {
	alertRepo   alert.AlertRepository
	replyRepo   reply.ReplyRepository
	tx          TxRunner
	notifier    Notifier
	telegramCfg *config.TelegramConfig
	logger      logger.Interface
	nowFn       func() time.Time
}

func NewHandleReplyUseCase(
	alertRepo alert.AlertRepository,
	replyRepo reply.ReplyRepository,
	tx TxRunner,
	notifier Notifier,
	telegramCfg *config.TelegramConfig,
	logger logger.Interface,
) *HandleReplyUseCase {
	return &HandleReplyUseCase{
		alertRepo:   alertRepo,
		replyRepo:   replyRepo,
		tx:          tx,
		notifier:    notifier,
		telegramCfg: telegramCfg,
		logger:      logger,
		nowFn:       biztime.Now,
	}
}

func (uc *HandleReplyUseCase) Execute(ctx context.Context, cmd HandleReplyCommand) (*HandleReplyResult, error) {
	now := uc.nowFn()
	text := strings.TrimSpace(cmd.Text)

	uc.logger.Infow("processing chat reply", "chat_id", cmd.ChatID, "sender", cmd.SenderName)

	if !uc.telegramCfg.IsAllowed(cmd.ChatID) {
		uc.logger.Warnw("reply from unauthorized chat ignored", "chat_id", cmd.ChatID)
		uc.journal(ctx, cmd, text, reply.OutcomeUnauthorized, nil, now)
		return &HandleReplyResult{Outcome: reply.OutcomeUnauthorized}, nil
	}

	var (
		outcome   reply.Outcome
		claimedID *uint
		etaAt     time.Time
		remaining int64
	)

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		claimed, err := uc.alertRepo.FindOldestUnansweredForUpdate(txCtx)
		if err != nil {
			return err
		}
		if claimed == nil {
			outcome = reply.OutcomeNoPending
			return nil
		}

		etaAt, err = vo.ParseETA(text, biztime.In(cmd.SentAt), now)
		if err != nil {
			outcome = reply.OutcomeInvalidFormat
			return nil
		}

		if err := claimed.AnswerETA(text, etaAt, cmd.SenderName, now); err != nil {
			return err
		}
		if err := uc.alertRepo.Update(txCtx, claimed); err != nil {
			return err
		}

		remaining, err = uc.alertRepo.CountUnanswered(txCtx)
		if err != nil {
			return err
		}

		id := claimed.ID()
		claimedID = &id
		outcome = reply.OutcomeAccepted
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to process chat reply", "chat_id", cmd.ChatID, "error", err)
		return nil, err
	}

	uc.journal(ctx, cmd, text, outcome, claimedID, now)

	result := &HandleReplyResult{Outcome: outcome, AlertID: claimedID, Remaining: remaining}

	switch outcome {
	case reply.OutcomeNoPending:
		if err := uc.notifier.NotifyNothingPending(ctx, cmd.ChatID); err != nil {
			uc.logger.Warnw("failed to send nothing-pending notice", "chat_id", cmd.ChatID, "error", err)
		}
	case reply.OutcomeInvalidFormat:
		if err := uc.notifier.RejectFormat(ctx, cmd.ChatID); err != nil {
			uc.logger.Warnw("failed to send format rejection", "chat_id", cmd.ChatID, "error", err)
		}
	case reply.OutcomeAccepted:
		result.ETAText = text
		result.ETAAt = &etaAt
		uc.logger.Infow("deadline registered",
			"alert_id", *claimedID,
			"eta", biztime.Format(etaAt, "2006-01-02 15:04"),
			"remaining", remaining,
		)
		if err := uc.notifier.ConfirmETA(ctx, cmd.ChatID, text, remaining); err != nil {
			uc.logger.Warnw("failed to send deadline confirmation", "chat_id", cmd.ChatID, "error", err)
		}
	}

	return result, nil
}

// journal is best effort. Losing an audit row must not fail the reply flow.
func (uc *HandleReplyUseCase) journal(ctx context.Context, cmd HandleReplyCommand, text string, outcome reply.Outcome, alertID *uint, now time.Time) {
	entry, err := reply.NewReply(cmd.ChatID, cmd.SenderName, text, outcome, alertID, now)
	if err != nil {
		uc.logger.Warnw("failed to build reply journal entry", "chat_id", cmd.ChatID, "error", err)
		return
	}
	if err := uc.replyRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to journal reply", "chat_id", cmd.ChatID, "error", err)
	}
}
