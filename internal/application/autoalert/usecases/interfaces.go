package usecases

import (
	"context"
	"time"

	alertusecases "vigia/internal/application/alert/usecases"
	"vigia/internal/application/autoalert/dto"
)

// SchedulerController drives the background generation loop. Implementations
// must tolerate redundant calls: starting a running scheduler and stopping a
// stopped one are both no-ops.
type SchedulerController interface {
	Start(interval time.Duration)
	Stop()
	UpdateInterval(interval time.Duration)
	IsRunning() bool
}

// AlertGenerator produces one synthetic alert command from the equipment
// catalogs.
type AlertGenerator interface {
	Generate() alertusecases.CreateAlertCommand
}

type GetStatusExecutor interface {
	Execute(ctx context.Context) (*dto.StatusDTO, error)
}

type ToggleExecutor interface {
	Execute(ctx context.Context, cmd ToggleCommand) (*dto.StatusDTO, error)
}

type UpdateIntervalExecutor interface {
	Execute(ctx context.Context, cmd UpdateIntervalCommand) (*dto.StatusDTO, error)
}

type GenerateNowExecutor interface {
	Execute(ctx context.Context) (*GenerateNowResult, error)
}
