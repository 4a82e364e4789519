package usecases

import (
	"context"
	"time"

	"vigia/internal/domain/alert"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
)

type CreateAlertCommand struct {
	Description   string
	Code          string
	Unit          string
	Front         string
	Equipment     string
	EquipmentCode string
	OperationType string
	Operation     string
	OperatorName  string
	OperationDate *time.Time
	OpenDuration  string
	TreeType      string
}

type CreateAlertResult struct {
	AlertID   uint      `json:"alert_id"`
	Recipient string    `json:"recipient"`
	MessageID *int64    `json:"message_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAlertUseCase struct {
	alertRepo       alert.AlertRepository
	notifier        Notifier
	leaderChatID    int64
	responsibleName string
	logger          logger.Interface
	nowFn           func() time.Time
}

func NewCreateAlertUseCase(
	alertRepo alert.AlertRepository,
	notifier Notifier,
	leaderChatID int64,
	responsibleName string,
	logger logger.Interface,
) *CreateAlertUseCase {
	return &CreateAlertUseCase{
		alertRepo:       alertRepo,
		notifier:        notifier,
		leaderChatID:    leaderChatID,
		responsibleName: responsibleName,
		logger:          logger,
		nowFn:           biztime.Now,
	}
}

func (uc *CreateAlertUseCase) Execute(ctx context.Context, cmd CreateAlertCommand) (*CreateAlertResult, error) {
	uc.logger.Infow("executing create alert use case", "description", cmd.Description)

	if len(cmd.Description) == 0 {
		return nil, errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return nil, errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	recipient := formatChatID(uc.leaderChatID)
	newAlert, err := alert.NewAlert(cmd.Description, recipient, uc.responsibleName, alert.Descriptor{
		Code:          cmd.Code,
		Unit:          cmd.Unit,
		Front:         cmd.Front,
		Equipment:     cmd.Equipment,
		EquipmentCode: cmd.EquipmentCode,
		OperationType: cmd.OperationType,
		Operation:     cmd.Operation,
		OperatorName:  cmd.OperatorName,
		OperationDate: cmd.OperationDate,
		OpenDuration:  cmd.OpenDuration,
		TreeType:      cmd.TreeType,
	}, uc.nowFn())
	if err != nil {
		uc.logger.Errorw("failed to create alert entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.alertRepo.Save(ctx, newAlert); err != nil {
		uc.logger.Errorw("failed to save alert", "error", err)
		return nil, err
	}

	// The chat prompt is best effort. The alert exists either way; an
	// undelivered prompt just means the leader answers a later one first.
	messageID, err := uc.notifier.PromptForETA(ctx, recipient, newAlert.Description())
	if err != nil {
		uc.logger.Warnw("failed to send deadline prompt", "alert_id", newAlert.ID(), "error", err)
	} else {
		newAlert.SetMessageID(messageID)
		if err := uc.alertRepo.Update(ctx, newAlert); err != nil {
			uc.logger.Warnw("failed to record prompt message id", "alert_id", newAlert.ID(), "error", err)
		}
	}

	uc.logger.Infow("alert created successfully", "alert_id", newAlert.ID(), "recipient", recipient)

	return &CreateAlertResult{
		AlertID:   newAlert.ID(),
		Recipient: recipient,
		MessageID: newAlert.MessageID(),
		CreatedAt: newAlert.CreatedAt(),
	}, nil
}
