package usecases

import (
	"context"

	"vigia/internal/domain/alert"
	"vigia/internal/domain/reply"
	"vigia/internal/shared/logger"
)

type mockAlertRepository struct {
	SaveFunc                          func(ctx context.Context, a *alert.Alert) error
	UpdateFunc                        func(ctx context.Context, a *alert.Alert) error
	FindByIDFunc                      func(ctx context.Context, id uint) (*alert.Alert, error)
	ListAllFunc                       func(ctx context.Context) ([]*alert.Alert, error)
	FindOldestUnansweredForUpdateFunc func(ctx context.Context) (*alert.Alert, error)
	CountUnansweredFunc               func(ctx context.Context) (int64, error)
	CountAnsweredFunc                 func(ctx context.Context) (int64, error)
	CountFunc                         func(ctx context.Context) (int64, error)
	DeleteAllFunc                     func(ctx context.Context) error
}

func (m *mockAlertRepository) Save(ctx context.Context, a *alert.Alert) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) FindByID(ctx context.Context, id uint) (*alert.Alert, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAlertRepository) ListAll(ctx context.Context) ([]*alert.Alert, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAlertRepository) FindOldestUnansweredForUpdate(ctx context.Context) (*alert.Alert, error) {
	if m.FindOldestUnansweredForUpdateFunc != nil {
		return m.FindOldestUnansweredForUpdateFunc(ctx)
	}
	return nil, nil
}

func (m *mockAlertRepository) CountUnanswered(ctx context.Context) (int64, error) {
	if m.CountUnansweredFunc != nil {
		return m.CountUnansweredFunc(ctx)
	}
	return 0, nil
}

func (m *mockAlertRepository) CountAnswered(ctx context.Context) (int64, error) {
	if m.CountAnsweredFunc != nil {
		return m.CountAnsweredFunc(ctx)
	}
	return 0, nil
}

func (m *mockAlertRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockAlertRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

type mockReplyRepository struct {
	SaveFunc       func(ctx context.Context, r *reply.Reply) error
	ListRecentFunc func(ctx context.Context, limit int) ([]*reply.Reply, error)
}

func (m *mockReplyRepository) Save(ctx context.Context, r *reply.Reply) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReplyRepository) ListRecent(ctx context.Context, limit int) ([]*reply.Reply, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockNotifier struct {
	PromptForETAFunc         func(ctx context.Context, chatID string, description string) (int64, error)
	ConfirmETAFunc           func(ctx context.Context, chatID int64, etaText string, remaining int64) error
	RejectFormatFunc         func(ctx context.Context, chatID int64) error
	NotifyNothingPendingFunc func(ctx context.Context, chatID int64) error
}

func (m *mockNotifier) PromptForETA(ctx context.Context, chatID string, description string) (int64, error) {
	if m.PromptForETAFunc != nil {
		return m.PromptForETAFunc(ctx, chatID, description)
	}
	return 0, nil
}

func (m *mockNotifier) ConfirmETA(ctx context.Context, chatID int64, etaText string, remaining int64) error {
	if m.ConfirmETAFunc != nil {
		return m.ConfirmETAFunc(ctx, chatID, etaText, remaining)
	}
	return nil
}

func (m *mockNotifier) RejectFormat(ctx context.Context, chatID int64) error {
	if m.RejectFormatFunc != nil {
		return m.RejectFormatFunc(ctx, chatID)
	}
	return nil
}

func (m *mockNotifier) NotifyNothingPending(ctx context.Context, chatID int64) error {
	if m.NotifyNothingPendingFunc != nil {
		return m.NotifyNothingPendingFunc(ctx, chatID)
	}
	return nil
}

// mockTxRunner runs the function directly on the caller's context.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                       {}
func (m *mockLogger) Info(msg string, args ...any)                        {}
func (m *mockLogger) Warn(msg string, args ...any)                        {}
func (m *mockLogger) Error(msg string, args ...any)                       {}
func (m *mockLogger) Fatal(msg string, args ...any)                       {}
func (m *mockLogger) With(args ...any) logger.Interface                   { return m }
func (m *mockLogger) Named(name string) logger.Interface                  { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})     {}
