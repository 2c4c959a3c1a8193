package health

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/registry"
)

// fakeProber returns scripted probe results per server. Live-connection
// probes and transient connect probes are scripted separately.
type fakeProber struct {
	mu       sync.Mutex
	results  map[string][]probeResult // consumed front to back; last repeats
	connects map[string][]probeResult
	offline  map[string]bool
	probes   int
	probed   int // transient connect probes issued
}

type probeResult struct {
	ok      bool
	seconds float64
	block   time.Duration // simulate a slow probe
}

func (p *fakeProber) Connected(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.offline[id]
}

// popLocked consumes the next scripted result for id; the last one repeats.
func popLocked(queues map[string][]probeResult, id string) probeResult {
	queue := queues[id]
	var r probeResult
	if len(queue) > 0 {
		r = queue[0]
		if len(queue) > 1 {
			queues[id] = queue[1:]
		}
	}
	return r
}

func (p *fakeProber) ProbeHealth(ctx context.Context, id string) (bool, float64) {
	p.mu.Lock()
	p.probes++
	r := popLocked(p.results, id)
	p.mu.Unlock()

	if r.block > 0 {
		select {
		case <-time.After(r.block):
		case <-ctx.Done():
			return false, r.seconds
		}
	}
	return r.ok, r.seconds
}

func (p *fakeProber) ProbeConnect(ctx context.Context, spec models.ServerSpec) (bool, float64) {
	p.mu.Lock()
	p.probed++
	r := popLocked(p.connects, spec.ID)
	p.mu.Unlock()

	if r.block > 0 {
		select {
		case <-time.After(r.block):
		case <-ctx.Done():
			return false, r.seconds
		}
	}
	return r.ok, r.seconds
}

func newTestMonitor(t *testing.T, prober *fakeProber, opts Options) (*Monitor, *registry.Registry) {
	t.Helper()
	reg, err := registry.New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)
	return NewMonitor(reg, nil, prober, opts), reg
}

func TestMonitor_HealthTransitions(t *testing.T) {
	prober := &fakeProber{results: map[string][]probeResult{
		"fs": {
			{ok: false, seconds: 10.0},
			{ok: false, seconds: 10.0},
			{ok: false, seconds: 10.0},
			{ok: true, seconds: 0.05},
		},
	}}
	m, reg := newTestMonitor(t, prober, Options{})
	require.NoError(t, reg.Register(models.ServerSpec{ID: "fs"}))

	ctx := context.Background()
	wantStatuses := []models.HealthStatus{
		models.StatusError, models.StatusError, models.StatusError, models.StatusOnline,
	}
	wantErrors := []int{1, 2, 3, 0}
	for i, want := range wantStatuses {
		got := m.Check(ctx, "fs")
		assert.Equal(t, want, got, "probe %d", i)

		snap, err := reg.Health("fs")
		require.NoError(t, err)
		assert.Equal(t, want, snap.Status, "probe %d", i)
		assert.Equal(t, wantErrors[i], snap.ConsecutiveErrors, "probe %d", i)
	}

	snap, err := reg.Health("fs")
	require.NoError(t, err)
	assert.InDelta(t, 0.05, snap.EWMAResponseTime, 1e-9)
}

func TestMonitor_DisconnectedServerIsOffline(t *testing.T) {
	prober := &fakeProber{offline: map[string]bool{"fs": true}}
	m, reg := newTestMonitor(t, prober, Options{})
	require.NoError(t, reg.Register(models.ServerSpec{ID: "fs"}))

	// The transient connect probe fails, so the server stays Offline.
	got := m.Check(context.Background(), "fs")
	assert.Equal(t, models.StatusOffline, got)
	assert.Equal(t, 1, prober.probed, "a disconnected server gets a transient connect probe")
	assert.Zero(t, prober.probes, "no live-connection probe is issued for a disconnected server")
}

func TestMonitor_DisconnectedServerRecovers(t *testing.T) {
	prober := &fakeProber{
		offline: map[string]bool{"fs": true},
		connects: map[string][]probeResult{
			"fs": {
				{ok: false},
				{ok: true, seconds: 0.2},
			},
		},
	}
	m, reg := newTestMonitor(t, prober, Options{})
	require.NoError(t, reg.Register(models.ServerSpec{ID: "fs"}))

	ctx := context.Background()
	assert.Equal(t, models.StatusOffline, m.Check(ctx, "fs"))

	// The server comes back: the transient connect succeeds and the probe
	// records Online even though no live connection exists.
	assert.Equal(t, models.StatusOnline, m.Check(ctx, "fs"))

	snap, err := reg.Health("fs")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, snap.Status)
	assert.Equal(t, 0, snap.ConsecutiveErrors)
	assert.InDelta(t, 0.2, snap.EWMAResponseTime, 1e-9)
	assert.Zero(t, prober.probes, "recovery must not require a live connection")
}

func TestMonitor_ProbeTimeoutIsOffline(t *testing.T) {
	prober := &fakeProber{results: map[string][]probeResult{
		"fs": {{ok: false, block: time.Second}},
	}}
	m, reg := newTestMonitor(t, prober, Options{ProbeTimeout: 20 * time.Millisecond})
	require.NoError(t, reg.Register(models.ServerSpec{ID: "fs"}))

	got := m.Check(context.Background(), "fs")
	assert.Equal(t, models.StatusOffline, got)

	snap, err := reg.Health("fs")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, snap.Status)
}

func TestMonitor_CheckAllCoversEveryServer(t *testing.T) {
	prober := &fakeProber{results: map[string][]probeResult{
		"a": {{ok: true, seconds: 0.1}},
		"b": {{ok: true, seconds: 0.2}},
		"c": {{ok: false, seconds: 0}},
	}}
	m, reg := newTestMonitor(t, prober, Options{MaxConcurrent: 2})
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Register(models.ServerSpec{ID: id}))
	}

	m.CheckAll(context.Background())

	assert.Equal(t, []string{"a", "b"}, reg.OnlineIDs())
	snap, err := reg.Health("c")
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, snap.Status)
}

func TestMonitor_StartStop(t *testing.T) {
	prober := &fakeProber{results: map[string][]probeResult{
		"fs": {{ok: true, seconds: 0.1}},
	}}
	m, reg := newTestMonitor(t, prober, Options{Interval: time.Hour})
	require.NoError(t, reg.Register(models.ServerSpec{ID: "fs"}))

	m.Start(context.Background())
	m.Start(context.Background()) // second Start is a no-op

	// The loop runs its first sweep immediately.
	assert.Eventually(t, func() bool {
		return len(reg.OnlineIDs()) == 1
	}, time.Second, 5*time.Millisecond)

	m.Stop()
	m.Stop() // idempotent

	// Restart works.
	m.Start(context.Background())
	m.Stop()
}
