package alert

import "context"

type AlertRepository interface {
	Save(ctx context.Context, a *Alert) error
	Update(ctx context.Context, a *Alert) error
	FindByID(ctx context.Context, id uint) (*Alert, error)
	ListAll(ctx context.Context) ([]*Alert, error)
	// FindOldestUnansweredForUpdate returns the oldest alert without a
	// deadline, locked for the duration of the surrounding transaction.
	// Returns (nil, nil) when no alert is waiting.
	FindOldestUnansweredForUpdate(ctx context.Context) (*Alert, error)
	CountUnanswered(ctx context.Context) (int64, error)
	CountAnswered(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
