package usecases

import (
	"context"
	"time"

	"vigia/internal/domain/alert"
	"vigia/internal/shared/logger"
)

type LastUpdateResult struct {
	LastUpdate *time.Time `json:"last_update"`
	Count      int        `json:"count"`
}

// GetLastUpdateUseCase reports the most recent alert mutation so frontends
// can poll cheaply before refetching the whole board.
type GetLastUpdateUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewGetLastUpdateUseCase(alertRepo alert.AlertRepository, logger logger.Interface) *GetLastUpdateUseCase {
	return &GetLastUpdateUseCase{alertRepo: alertRepo, logger: logger}
}

func (uc *GetLastUpdateUseCase) Execute(ctx context.Context) (*LastUpdateResult, error) {
	alerts, err := uc.alertRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list alerts for last update", "error", err)
		return nil, err
	}

	var last *time.Time
	bump := func(t *time.Time) {
		if t == nil {
			return
		}
		if last == nil || t.After(*last) {
			v := *t
			last = &v
		}
	}
	for _, a := range alerts {
		created := a.CreatedAt()
		bump(&created)
		bump(a.AnsweredAt())
		bump(a.OperatingSince())
	}

	return &LastUpdateResult{LastUpdate: last, Count: len(alerts)}, nil
}
