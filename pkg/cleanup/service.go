// Package cleanup enforces data retention: usage records older than the
// configured window are pruned on a fixed cadence.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Pruner deletes usage rows older than the cutoff. Satisfied by
// metadata.Store.
type Pruner interface {
	PruneUsage(ctx context.Context, olderThan time.Time) (int, error)
}

// Options configures the retention loop. RetentionDays <= 0 disables the
// service entirely; Interval 0 defaults to 24h.
type Options struct {
	RetentionDays int
	Interval      time.Duration
}

// Service runs the retention loop. All operations are idempotent.
type Service struct {
	store Pruner
	opts  Options

	cancel context.CancelFunc
	done   chan struct{}

	logger *slog.Logger
}

// NewService creates the retention service.
func NewService(store Pruner, opts Options) *Service {
	if opts.Interval <= 0 {
		opts.Interval = 24 * time.Hour
	}
	return &Service{
		store:  store,
		opts:   opts,
		logger: slog.With("subsystem", "cleanup"),
	}
}

// Start launches the background retention loop. Disabled or already-running
// services are a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.opts.RetentionDays <= 0 {
		s.logger.Info("Usage retention disabled")
		return
	}
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention service started",
		"retention_days", s.opts.RetentionDays,
		"interval", s.opts.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.logger.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Prune(ctx)

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune(ctx)
		}
	}
}

// Prune runs one retention pass immediately.
func (s *Service) Prune(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.opts.RetentionDays)
	count, err := s.store.PruneUsage(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: usage prune failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: pruned usage records", "count", count, "cutoff", cutoff)
	}
}
