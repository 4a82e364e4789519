package usecases

import (
	"context"

	"vigia/internal/domain/alert"
	"vigia/internal/shared/logger"
)

type PurgeAlertsResult struct {
	Deleted int64 `json:"deleted"`
}

// PurgeAlertsUseCase wipes every alert. It exists for resetting demo and
// staging environments; there is no soft delete.
type PurgeAlertsUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewPurgeAlertsUseCase(alertRepo alert.AlertRepository, logger logger.Interface) *PurgeAlertsUseCase {
	return &PurgeAlertsUseCase{alertRepo: alertRepo, logger: logger}
}

func (uc *PurgeAlertsUseCase) Execute(ctx context.Context) (*PurgeAlertsResult, error) {
	count, err := uc.alertRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.alertRepo.DeleteAll(ctx); err != nil {
		uc.logger.Errorw("failed to purge alerts", "error", err)
		return nil, err
	}

	uc.logger.Infow("alerts purged", "deleted", count)
	return &PurgeAlertsResult{Deleted: count}, nil
}
