package usecases

import (
	"context"
	"time"

	"vigia/internal/application/autoalert/dto"
	"vigia/internal/domain/autoalert"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/logger"
)

type ToggleCommand struct {
	Enabled bool
}

// ToggleUseCase persists the enabled flag and brings the scheduler in line
// with it.
type ToggleUseCase struct {
	configRepo autoalert.ConfigRepository
	scheduler  SchedulerController
	logger     logger.Interface
	nowFn      func() time.Time
}

func NewToggleUseCase(
	configRepo autoalert.ConfigRepository,
	scheduler SchedulerController,
	logger logger.Interface,
) *ToggleUseCase {
	return &ToggleUseCase{
		configRepo: configRepo,
		scheduler:  scheduler,
		logger:     logger,
		nowFn:      biztime.Now,
	}
}

func (uc *ToggleUseCase) Execute(ctx context.Context, cmd ToggleCommand) (*dto.StatusDTO, error) {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	cfg.SetEnabled(cmd.Enabled, uc.nowFn())
	if err := uc.configRepo.Update(ctx, cfg); err != nil {
		uc.logger.Errorw("failed to persist auto alert toggle", "enabled", cmd.Enabled, "error", err)
		return nil, err
	}

	if cmd.Enabled {
		uc.scheduler.Start(cfg.Interval())
	} else {
		uc.scheduler.Stop()
	}

	uc.logger.Infow("auto alert generation toggled", "enabled", cmd.Enabled, "interval_minutes", cfg.IntervalMinutes())

	return &dto.StatusDTO{
		Enabled:         cfg.Enabled(),
		IntervalMinutes: cfg.IntervalMinutes(),
		Running:         uc.scheduler.IsRunning(),
		UpdatedAt:       cfg.UpdatedAt(),
	}, nil
}
