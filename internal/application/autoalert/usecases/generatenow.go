package usecases

import (
	"context"

	alertusecases "vigia/internal/application/alert/usecases"
	"vigia/internal/shared/logger"
)

type GenerateNowResult struct {
	AlertID     uint   `json:"alert_id"`
	Description string `json:"description"`
}

// GenerateNowUseCase creates one synthetic alert on demand. The scheduler
// calls the same path on every tick.
type GenerateNowUseCase struct {
	createAlert alertusecases.CreateAlertExecutor
	generator   AlertGenerator
	logger      logger.Interface
}

func NewGenerateNowUseCase(
	createAlert alertusecases.CreateAlertExecutor,
	generator AlertGenerator,
	logger logger.Interface,
) *GenerateNowUseCase {
	return &GenerateNowUseCase{
		createAlert: createAlert,
		generator:   generator,
		logger:      logger,
	}
}

func (uc *GenerateNowUseCase) Execute(ctx context.Context) (*GenerateNowResult, error) {
	cmd := uc.generator.Generate()

	result, err := uc.createAlert.Execute(ctx, cmd)
	if err != nil {
		uc.logger.Errorw("failed to create generated alert", "error", err)
		return nil, err
	}

	uc.logger.Infow("generated alert created", "alert_id", result.AlertID)
	return &GenerateNowResult{AlertID: result.AlertID, Description: cmd.Description}, nil
}
