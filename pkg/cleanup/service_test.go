package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	pruned  int
}

func (p *fakePruner) PruneUsage(_ context.Context, olderThan time.Time) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cutoffs = append(p.cutoffs, olderThan)
	return p.pruned, nil
}

func (p *fakePruner) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cutoffs)
}

func TestService_PruneCutoff(t *testing.T) {
	pruner := &fakePruner{pruned: 3}
	s := NewService(pruner, Options{RetentionDays: 30})

	s.Prune(context.Background())

	require.Equal(t, 1, pruner.calls())
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, pruner.cutoffs[0], time.Minute)
}

func TestService_StartRunsImmediately(t *testing.T) {
	pruner := &fakePruner{}
	s := NewService(pruner, Options{RetentionDays: 30, Interval: time.Hour})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return pruner.calls() == 1 },
		time.Second, 5*time.Millisecond)
	s.Stop()

	// Stop is idempotent; a stopped service can be restarted.
	s.Stop()
	s.Start(context.Background())
	assert.Eventually(t, func() bool { return pruner.calls() == 2 },
		time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestService_DisabledNeverRuns(t *testing.T) {
	pruner := &fakePruner{}
	s := NewService(pruner, Options{RetentionDays: 0, Interval: time.Millisecond})

	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	assert.Equal(t, 0, pruner.calls())
}
