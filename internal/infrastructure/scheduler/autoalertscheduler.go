package scheduler

import (
	"context"
	"sync"
	"time"

	"vigia/internal/shared/goroutine"
	"vigia/internal/shared/logger"
)

// AlertProducer creates one synthetic alert per tick.
type AlertProducer interface {
	Execute(ctx context.Context) error
}

// ProducerFunc adapts a plain function to AlertProducer.
type ProducerFunc func(ctx context.Context) error

func (f ProducerFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// AutoAlertScheduler runs the periodic alert generation loop. Unlike a
// one-shot scheduler it can be started, stopped, and retuned repeatedly
// from the HTTP surface.
type AutoAlertScheduler struct {
	producer AlertProducer
	logger   logger.Interface

	mu       sync.Mutex
	stopChan chan struct{}
	interval time.Duration
	running  bool
}

func NewAutoAlertScheduler(producer AlertProducer, logger logger.Interface) *AutoAlertScheduler {
	return &AutoAlertScheduler{
		producer: producer,
		logger:   logger,
	}
}

// Start launches the loop with the given cadence. Starting a running
// scheduler is a no-op.
func (s *AutoAlertScheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.interval = interval
	s.stopChan = make(chan struct{})
	s.running = true
	stopChan := s.stopChan

	s.logger.Infow("starting auto alert scheduler", "interval", interval)

	goroutine.SafeGo(s.logger, "auto-alert-scheduler", func() {
		s.run(stopChan, interval)
	})
}

// Stop halts the loop. Stopping a stopped scheduler is a no-op.
func (s *AutoAlertScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	close(s.stopChan)
	s.running = false
	s.logger.Infow("auto alert scheduler stopped")
}

// UpdateInterval restarts the loop with a new cadence when running.
func (s *AutoAlertScheduler) UpdateInterval(interval time.Duration) {
	s.mu.Lock()
	wasRunning := s.running
	s.mu.Unlock()

	if !wasRunning {
		s.mu.Lock()
		s.interval = interval
		s.mu.Unlock()
		return
	}

	s.Stop()
	s.Start(interval)
}

func (s *AutoAlertScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *AutoAlertScheduler) run(stopChan chan struct{}, interval time.Duration) {
	// Produce one alert right away so enabling the generator has a visible
	// effect before the first tick.
	s.produce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			s.produce()
		}
	}
}

func (s *AutoAlertScheduler) produce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.producer.Execute(ctx); err != nil {
		s.logger.Errorw("failed to produce generated alert", "error", err)
	}
}
