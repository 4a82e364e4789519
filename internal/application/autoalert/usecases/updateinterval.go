package usecases

import (
	"context"
	"time"

	"vigia/internal/application/autoalert/dto"
	"vigia/internal/domain/autoalert"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
)

type UpdateIntervalCommand struct {
	IntervalMinutes int
}

type UpdateIntervalUseCase struct {
	configRepo autoalert.ConfigRepository
	scheduler  SchedulerController
	logger     logger.Interface
	nowFn      func() time.Time
}

func NewUpdateIntervalUseCase(
	configRepo autoalert.ConfigRepository,
	scheduler SchedulerController,
	logger logger.Interface,
) *UpdateIntervalUseCase {
	return &UpdateIntervalUseCase{
		configRepo: configRepo,
		scheduler:  scheduler,
		logger:     logger,
		nowFn:      biztime.Now,
	}
}

func (uc *UpdateIntervalUseCase) Execute(ctx context.Context, cmd UpdateIntervalCommand) (*dto.StatusDTO, error) {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := cfg.SetIntervalMinutes(cmd.IntervalMinutes, uc.nowFn()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.configRepo.Update(ctx, cfg); err != nil {
		uc.logger.Errorw("failed to persist auto alert interval", "interval_minutes", cmd.IntervalMinutes, "error", err)
		return nil, err
	}

	// A running scheduler picks up the new cadence immediately.
	if uc.scheduler.IsRunning() {
		uc.scheduler.UpdateInterval(cfg.Interval())
	}

	uc.logger.Infow("auto alert interval updated", "interval_minutes", cfg.IntervalMinutes())

	return &dto.StatusDTO{
		Enabled:         cfg.Enabled(),
		IntervalMinutes: cfg.IntervalMinutes(),
		Running:         uc.scheduler.IsRunning(),
		UpdatedAt:       cfg.UpdatedAt(),
	}, nil
}
