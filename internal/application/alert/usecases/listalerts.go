package usecases

import (
	"context"
	"time"

	"vigia/internal/application/alert/dto"
	"vigia/internal/domain/alert"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/logger"
)

type ListAlertsUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
	nowFn     func() time.Time
}

func NewListAlertsUseCase(alertRepo alert.AlertRepository, logger logger.Interface) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		alertRepo: alertRepo,
		logger:    logger,
		nowFn:     biztime.Now,
	}
}

// Execute returns every alert grouped by bucket as of the current instant.
// The grouping is computed fresh on each call; nothing bucket-related is
// read from storage.
func (uc *ListAlertsUseCase) Execute(ctx context.Context) (*dto.BoardDTO, error) {
	alerts, err := uc.alertRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list alerts", "error", err)
		return nil, err
	}

	now := uc.nowFn()
	board := dto.NewBoardDTO(alert.Categorize(alerts, now), now)
	return &board, nil
}
