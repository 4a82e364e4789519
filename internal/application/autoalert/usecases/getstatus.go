package usecases

import (
	"context"

	"vigia/internal/application/autoalert/dto"
	"vigia/internal/domain/autoalert"
	"vigia/internal/shared/logger"
)

type GetStatusUseCase struct {
	configRepo autoalert.ConfigRepository
	scheduler  SchedulerController
	logger     logger.Interface
}

func NewGetStatusUseCase(
	configRepo autoalert.ConfigRepository,
	scheduler SchedulerController,
	logger logger.Interface,
) *GetStatusUseCase {
	return &GetStatusUseCase{
		configRepo: configRepo,
		scheduler:  scheduler,
		logger:     logger,
	}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context) (*dto.StatusDTO, error) {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load auto alert config", "error", err)
		return nil, err
	}

	return &dto.StatusDTO{
		Enabled:         cfg.Enabled(),
		IntervalMinutes: cfg.IntervalMinutes(),
		Running:         uc.scheduler.IsRunning(),
		UpdatedAt:       cfg.UpdatedAt(),
	}, nil
}
