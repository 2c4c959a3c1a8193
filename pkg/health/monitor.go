// Package health runs the background prober: every interval it asks the
// adapter layer to probe each registered server and writes the outcome to
// the registry and the metadata store.
package health

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/registry"
)

// Defaults for the probe loop.
const (
	DefaultInterval     = 300 * time.Second
	DefaultProbeTimeout = 10 * time.Second
)

// Prober measures a server's liveness. Satisfied by the adapter manager.
type Prober interface {
	Connected(id string) bool
	ProbeHealth(ctx context.Context, id string) (bool, float64)
	ProbeConnect(ctx context.Context, spec models.ServerSpec) (bool, float64)
}

// Store receives durable health updates. Satisfied by the metadata store.
type Store interface {
	UpdateHealth(ctx context.Context, id string, status models.HealthStatus, responseTime float64) error
}

// Options tunes the monitor; zero values take the defaults.
type Options struct {
	Interval      time.Duration
	ProbeTimeout  time.Duration
	MaxConcurrent int64 // probe ceiling; 0 = CPU count × 4
}

// Monitor is the background health prober.
type Monitor struct {
	registry *registry.Registry
	store    Store
	prober   Prober

	interval     time.Duration
	probeTimeout time.Duration
	sem          *semaphore.Weighted

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewMonitor creates a monitor over the registry, metadata store, and
// adapter layer.
func NewMonitor(reg *registry.Registry, store Store, prober Prober, opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = DefaultProbeTimeout
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = int64(runtime.NumCPU() * 4)
	}
	return &Monitor{
		registry:     reg,
		store:        store,
		prober:       prober,
		interval:     opts.Interval,
		probeTimeout: opts.ProbeTimeout,
		sem:          semaphore.NewWeighted(opts.MaxConcurrent),
		logger:       slog.With("subsystem", "health"),
	}
}

// Start launches the probe loop. Calling Start on a running monitor is a
// no-op.
func (m *Monitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.loop(ctx)
}

// Stop cancels the loop and waits for outstanding probes. After Stop
// returns, Start may be called again.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil
}

func (m *Monitor) loop(ctx context.Context) {
	defer close(m.done)

	// First sweep immediately so fresh servers don't wait a full interval.
	m.CheckAll(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckAll(ctx)
		}
	}
}

// CheckAll probes every registered server, bounded by the concurrency
// ceiling. Blocks until the sweep completes or ctx is cancelled.
func (m *Monitor) CheckAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, spec := range m.registry.ListAll() {
		if err := m.sem.Acquire(ctx, 1); err != nil {
			break // cancelled mid-sweep
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			defer m.sem.Release(1)
			m.Check(ctx, id)
		}(spec.ID)
	}
	wg.Wait()
}

// Check runs one ad-hoc probe and writes the result to the registry and the
// metadata store. A server without a live connection gets a transient
// connect/close probe and comes back Online when it succeeds. A timed-out
// probe records Offline with the full budget as its response time; any
// other failure on a live connection records Error.
func (m *Monitor) Check(ctx context.Context, id string) models.HealthStatus {
	status, responseTime := m.probe(ctx, id)

	if err := m.registry.UpdateHealth(id, status, responseTime); err != nil {
		m.logger.Warn("Failed to write health to registry", "server", id, "error", err)
	}
	if m.store != nil {
		if err := m.store.UpdateHealth(ctx, id, status, responseTime); err != nil {
			m.logger.Warn("Failed to write health to metadata store", "server", id, "error", err)
		}
	}

	m.logger.Debug("Probe completed", "server", id, "status", status, "response_time", responseTime)
	return status
}

func (m *Monitor) probe(ctx context.Context, id string) (models.HealthStatus, float64) {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	if !m.prober.Connected(id) {
		// No live connection: a transient connect/close round trip decides
		// whether the server can come back online.
		spec, _, err := m.registry.Lookup(id)
		if err != nil {
			return models.StatusOffline, -1
		}
		if ok, elapsed := m.prober.ProbeConnect(probeCtx, spec); ok {
			return models.StatusOnline, elapsed
		}
		if errors.Is(probeCtx.Err(), context.DeadlineExceeded) {
			return models.StatusOffline, m.probeTimeout.Seconds()
		}
		return models.StatusOffline, -1
	}

	ok, elapsed := m.prober.ProbeHealth(probeCtx, id)
	if ok {
		return models.StatusOnline, elapsed
	}
	if errors.Is(probeCtx.Err(), context.DeadlineExceeded) {
		return models.StatusOffline, m.probeTimeout.Seconds()
	}
	return models.StatusError, elapsed
}
