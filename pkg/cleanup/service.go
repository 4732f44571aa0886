// Package cleanup runs the background janitor: failing runs that stopped
// making progress and dropping expired idempotency cache entries.
//
// All operations are idempotent and safe to run from multiple processes.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// Service periodically sweeps abandoned runs and expired cache entries.
type Service struct {
	interval time.Duration
	window   time.Duration

	runs        *services.RunService
	idempotency *services.IdempotencyCache

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a janitor. interval is how often the sweep runs;
// window is how long a running run may sit without a state change before
// it is failed.
func NewService(interval, window time.Duration, runs *services.RunService, idempotency *services.IdempotencyCache) *Service {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Service{
		interval:    interval,
		window:      window,
		runs:        runs,
		idempotency: idempotency,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Janitor started",
		"interval", s.interval,
		"staleness_window", s.window)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Janitor stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(_ context.Context) {
	s.sweepStaleRuns()
	s.sweepIdempotency()
}

func (s *Service) sweepStaleRuns() {
	count, err := s.runs.SweepStale(context.Background(), s.window)
	if err != nil {
		slog.Error("Janitor: stale-run sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Janitor: failed stale runs", "count", count)
	}
}

func (s *Service) sweepIdempotency() {
	if s.idempotency == nil {
		return
	}
	if removed := s.idempotency.Sweep(); removed > 0 {
		slog.Info("Janitor: dropped expired idempotency entries", "count", removed)
	}
}
