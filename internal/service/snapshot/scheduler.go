package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler runs TakeAll on a fixed interval, starting immediately.
type Scheduler struct {
	svc       *Service
	interval  time.Duration
	scheduler *gocron.Scheduler
	log       *slog.Logger
}

// NewScheduler creates a scheduler for svc.
func NewScheduler(log *slog.Logger, svc *Service, interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("snapshot interval must be positive, got %s", interval)
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		svc:       svc,
		interval:  interval,
		scheduler: s,
		log:       log.With("service", "snapshot_scheduler"),
	}, nil
}

// Run schedules the job and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.scheduler.Every(s.interval).Do(s.tick, ctx); err != nil {
		return fmt.Errorf("schedule snapshots: %w", err)
	}

	s.scheduler.StartAsync()
	s.log.InfoContext(ctx, "snapshot scheduler started",
		slog.Duration("interval", s.interval),
		slog.String("dir", s.svc.Dir()),
	)

	<-ctx.Done()
	s.scheduler.Stop()
	s.log.Info("snapshot scheduler stopped")
	return nil
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	paths, err := s.svc.TakeAll(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "snapshot run failed", slog.String("error", err.Error()))
	}
	s.log.DebugContext(ctx, "snapshot run finished", slog.Int("written", len(paths)))
}
