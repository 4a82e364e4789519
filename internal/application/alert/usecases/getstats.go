package usecases

import (
	"context"
	"time"

	"vigia/internal/application/alert/dto"
	"vigia/internal/domain/alert"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/logger"
)

type GetStatsUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
	nowFn     func() time.Time
}

func NewGetStatsUseCase(alertRepo alert.AlertRepository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		alertRepo: alertRepo,
		logger:    logger,
		nowFn:     biztime.Now,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	alerts, err := uc.alertRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list alerts for stats", "error", err)
		return nil, err
	}

	now := uc.nowFn()
	board := alert.Categorize(alerts, now)

	var answered int64
	for _, a := range alerts {
		if a.HasETA() {
			answered++
		}
	}

	return &dto.StatsDTO{
		Total:      int64(len(alerts)),
		Answered:   answered,
		Unanswered: int64(len(alerts)) - answered,
		Pending:    len(board.Pending),
		Escalated:  len(board.Escalated),
		Overdue:    len(board.Overdue),
		Closed:     len(board.Closed),
		Now:        now,
	}, nil
}
