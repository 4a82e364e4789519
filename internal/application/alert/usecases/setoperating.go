package usecases

import (
	"context"
	"time"

	"vigia/internal/application/alert/dto"
	"vigia/internal/domain/alert"
	vo "vigia/internal/domain/alert/valueobjects"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
)

type SetOperatingStatusCommand struct {
	AlertID       uint
	Status        string
	Justification *string
}

type SetOperatingStatusUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
	nowFn     func() time.Time
}

func NewSetOperatingStatusUseCase(alertRepo alert.AlertRepository, logger logger.Interface) *SetOperatingStatusUseCase {
	return &SetOperatingStatusUseCase{
		alertRepo: alertRepo,
		logger:    logger,
		nowFn:     biztime.Now,
	}
}

func (uc *SetOperatingStatusUseCase) Execute(ctx context.Context, cmd SetOperatingStatusCommand) (*dto.AlertDTO, error) {
	uc.logger.Infow("executing set operating status use case", "alert_id", cmd.AlertID, "status", cmd.Status)

	if cmd.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}

	status, err := vo.NewOperatingStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	a, err := uc.alertRepo.FindByID(ctx, cmd.AlertID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("alert not found")
	}

	now := uc.nowFn()
	if err := a.SetOperatingStatus(status, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Justification != nil {
		a.SetJustification(*cmd.Justification)
	}

	if err := uc.alertRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update alert", "alert_id", cmd.AlertID, "error", err)
		return nil, err
	}

	uc.logger.Infow("operating status updated", "alert_id", a.ID(), "status", status, "bucket", a.Bucket(now))

	result := dto.NewAlertDTO(a, now)
	return &result, nil
}
