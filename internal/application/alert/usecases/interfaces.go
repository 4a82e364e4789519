package usecases

import (
	"context"

	"vigia/internal/application/alert/dto"
)

// Notifier relays lifecycle messages to the responsible leader's chat.
// Implementations must not retry indefinitely; a failed send is logged and
// the alert flow continues without it.
type Notifier interface {
	// PromptForETA asks the leader for a deadline and returns the id of the
	// outbound chat message.
	PromptForETA(ctx context.Context, chatID string, description string) (int64, error)
	// ConfirmETA acknowledges a registered deadline, mentioning how many
	// alerts are still waiting for one.
	ConfirmETA(ctx context.Context, chatID int64, etaText string, remaining int64) error
	// RejectFormat tells the sender the reply did not read as HH:MM.
	RejectFormat(ctx context.Context, chatID int64) error
	// NotifyNothingPending tells the sender no alert is waiting for a deadline.
	NotifyNothingPending(ctx context.Context, chatID int64) error
}

// TxRunner executes fn within a database transaction carried on the context.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateAlertExecutor interface {
	Execute(ctx context.Context, cmd CreateAlertCommand) (*CreateAlertResult, error)
}

type ListAlertsExecutor interface {
	Execute(ctx context.Context) (*dto.BoardDTO, error)
}

type HandleReplyExecutor interface {
	Execute(ctx context.Context, cmd HandleReplyCommand) (*HandleReplyResult, error)
}

type SetOperatingStatusExecutor interface {
	Execute(ctx context.Context, cmd SetOperatingStatusCommand) (*dto.AlertDTO, error)
}

type PurgeAlertsExecutor interface {
	Execute(ctx context.Context) (*PurgeAlertsResult, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type GetLastUpdateExecutor interface {
	Execute(ctx context.Context) (*LastUpdateResult, error)
}
