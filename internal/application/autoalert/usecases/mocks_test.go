package usecases

import (
	"context"
	"time"

	alertusecases "vigia/internal/application/alert/usecases"
	"vigia/internal/domain/autoalert"
	"vigia/internal/shared/logger"
)

type mockConfigRepository struct {
	GetFunc    func(ctx context.Context) (*autoalert.Config, error)
	UpdateFunc func(ctx context.Context, c *autoalert.Config) error
}

func (m *mockConfigRepository) Get(ctx context.Context) (*autoalert.Config, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return autoalert.ReconstructConfig(1, false, autoalert.DefaultIntervalMinutes, time.Now())
}

func (m *mockConfigRepository) Update(ctx context.Context, c *autoalert.Config) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

type mockScheduler struct {
	running         bool
	startCalls      []time.Duration
	stopCalls       int
	intervalUpdates []time.Duration
}

func (m *mockScheduler) Start(interval time.Duration) {
	m.running = true
	m.startCalls = append(m.startCalls, interval)
}

func (m *mockScheduler) Stop() {
	m.running = false
	m.stopCalls++
}

func (m *mockScheduler) UpdateInterval(interval time.Duration) {
	m.intervalUpdates = append(m.intervalUpdates, interval)
}

func (m *mockScheduler) IsRunning() bool {
	return m.running
}

type mockCreateAlert struct {
	ExecuteFunc func(ctx context.Context, cmd alertusecases.CreateAlertCommand) (*alertusecases.CreateAlertResult, error)
}

func (m *mockCreateAlert) Execute(ctx context.Context, cmd alertusecases.CreateAlertCommand) (*alertusecases.CreateAlertResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &alertusecases.CreateAlertResult{AlertID: 1}, nil
}

type mockGenerator struct {
	GenerateFunc func() alertusecases.CreateAlertCommand
}

func (m *mockGenerator) Generate() alertusecases.CreateAlertCommand {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return alertusecases.CreateAlertCommand{Description: "Equipamento parado"}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
