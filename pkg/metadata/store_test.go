package metadata

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "metadata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client)
}

func fsSpec() models.ServerSpec {
	return models.ServerSpec{
		ID:          "fs",
		Name:        "Filesystem",
		Description: "Local filesystem access",
		Launch: models.LaunchSpec{
			Kind:    models.TransportStdio,
			Command: "mcp-fs",
			Args:    []string{"--root", "/"},
			Env:     map[string]string{"FS_MODE": "rw"},
		},
		Capabilities: []string{"filesystem", "file_read"},
		Tags:         []string{"local", "storage"},
	}
}

func fsTools() []models.ToolInfo {
	return []models.ToolInfo{
		{
			Name:        "read",
			Description: "Read a file from disk",
			Schema: map[string]any{
				"type":     "object",
				"required": []any{"path"},
			},
		},
		{Name: "write", Description: "Write a file to disk"},
	}
}

func TestStore_UpsertReadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), fsTools()))

	rec, err := s.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, "Filesystem", rec.Spec.Name)
	assert.Equal(t, models.TransportStdio, rec.Spec.Launch.Kind)
	assert.Equal(t, []string{"--root", "/"}, rec.Spec.Launch.Args)
	assert.Equal(t, map[string]string{"FS_MODE": "rw"}, rec.Spec.Launch.Env)
	assert.Equal(t, []string{"file_read", "filesystem"}, rec.Spec.Capabilities)
	assert.Equal(t, []string{"local", "storage"}, rec.Spec.Tags)
	require.Len(t, rec.Tools, 2)
	assert.Equal(t, "read", rec.Tools[0].Name)
	assert.Equal(t, models.StatusUnknown, rec.Health.Status, "fresh server starts unknown")

	_, err = s.ReadServer(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpsertIsIdempotentAndReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), fsTools()))
	require.NoError(t, s.UpdateHealth(ctx, "fs", models.StatusOnline, 0.2))

	// Second upsert with fewer capabilities and tools replaces the sets but
	// keeps the health history.
	spec := fsSpec()
	spec.Capabilities = []string{"filesystem"}
	spec.Tags = []string{"local"}
	require.NoError(t, s.UpsertServer(ctx, spec, fsTools()[:1]))

	rec, err := s.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, []string{"filesystem"}, rec.Spec.Capabilities)
	assert.Equal(t, []string{"local"}, rec.Spec.Tags)
	assert.Len(t, rec.Tools, 1)
	assert.Equal(t, models.StatusOnline, rec.Health.Status)
	assert.InDelta(t, 0.2, rec.Health.EWMAResponseTime, 1e-9)
}

func TestStore_CapabilitiesAreLowercasedAndShared(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := fsSpec()
	a.Capabilities = []string{"Search"}
	require.NoError(t, s.UpsertServer(ctx, a, nil))

	b := fsSpec()
	b.ID = "web"
	b.Capabilities = []string{"search", "web"}
	require.NoError(t, s.UpsertServer(ctx, b, nil))

	caps, err := s.AllCapabilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"search": 2, "web": 1}, caps)

	ids, err := s.ByCapability(ctx, "SEARCH")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs", "web"}, ids)
}

func TestStore_DeleteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), fsTools()))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendUsage(ctx, models.UsageRecord{
			ServerID: "fs", ToolName: "read", Duration: 0.1, Succeeded: true,
		}))
	}

	require.NoError(t, s.DeleteServer(ctx, "fs"))
	assert.ErrorIs(t, s.DeleteServer(ctx, "fs"), ErrNotFound)

	_, err := s.ReadServer(ctx, "fs")
	assert.ErrorIs(t, err, ErrNotFound)

	// Every dependent row is gone.
	tags, err := s.AllTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	ids, err := s.ByCapability(ctx, "filesystem")
	require.NoError(t, err)
	assert.Empty(t, ids)

	stats, err := s.UsageStats(ctx, "fs", 30)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCalls)
}

func TestStore_FindServersForTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fs := fsSpec()
	require.NoError(t, s.UpsertServer(ctx, fs, fsTools()))

	web := models.ServerSpec{
		ID:           "web",
		Name:         "Web",
		Launch:       models.LaunchSpec{Kind: models.TransportStdio, Command: "mcp-web"},
		Capabilities: []string{"web_search"},
	}
	require.NoError(t, s.UpsertServer(ctx, web, []models.ToolInfo{
		{Name: "fetch", Description: "Fetch a page from the internet"},
	}))

	// Capability name match.
	ids, err := s.FindServersForTask(ctx, "search the web please")
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, ids)

	// Tool description match.
	ids, err = s.FindServersForTask(ctx, "fetch this page")
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, ids)

	// Tokens of length <= 3 are ignored.
	ids, err = s.FindServersForTask(ctx, "web a an it")
	require.NoError(t, err)
	assert.Empty(t, ids)

	// One server matching on both capability and tool text appears once.
	ids, err = s.FindServersForTask(ctx, "read a file from the filesystem")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs"}, ids)

	// Offline servers are excluded; unknown remains eligible.
	require.NoError(t, s.UpdateHealth(ctx, "web", models.StatusOffline, -1))
	ids, err = s.FindServersForTask(ctx, "search the web please")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_UpdateHealthEWMA(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), nil))

	require.NoError(t, s.UpdateHealth(ctx, "fs", models.StatusError, -1))
	require.NoError(t, s.UpdateHealth(ctx, "fs", models.StatusError, -1))
	rec, err := s.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, rec.Health.Status)
	assert.Equal(t, 2, rec.Health.ConsecutiveErrors)

	require.NoError(t, s.UpdateHealth(ctx, "fs", models.StatusOnline, 1.0))
	require.NoError(t, s.UpdateHealth(ctx, "fs", models.StatusOnline, 2.0))
	rec, err = s.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Zero(t, rec.Health.ConsecutiveErrors)
	assert.InDelta(t, 0.3*2.0+0.7*1.0, rec.Health.EWMAResponseTime, 1e-9)

	assert.ErrorIs(t, s.UpdateHealth(ctx, "nope", models.StatusOnline, 0), ErrNotFound)
}

func TestStore_UsageStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), fsTools()))

	now := time.Now()
	records := []models.UsageRecord{
		{ServerID: "fs", ToolName: "read", Duration: 0.2, Succeeded: true, StartedAt: now.Add(-time.Hour)},
		{ServerID: "fs", ToolName: "read", Duration: 0.4, Succeeded: false, StartedAt: now.Add(-time.Minute)},
		{ServerID: "fs", ToolName: "write", Duration: 0.6, Succeeded: true, StartedAt: now},
		// Outside the 30-day window; must not count.
		{ServerID: "fs", ToolName: "read", Duration: 9.0, Succeeded: false, StartedAt: now.AddDate(0, 0, -40)},
	}
	for _, rec := range records {
		require.NoError(t, s.AppendUsage(ctx, rec))
	}

	stats, err := s.UsageStats(ctx, "fs", 30)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCalls)
	assert.InDelta(t, 2.0/3.0, stats.SuccessRate, 1e-9)
	assert.InDelta(t, (0.2+0.4+0.6)/3.0, stats.AvgDuration, 1e-9)
	assert.Equal(t, map[string]int{"read": 2, "write": 1}, stats.ByTool)
	assert.WithinDuration(t, now, stats.LastUsedAt, time.Second)
}

func TestStore_PruneUsage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), nil))

	now := time.Now()
	for _, rec := range []models.UsageRecord{
		{ServerID: "fs", ToolName: "read", Succeeded: true, StartedAt: now},
		{ServerID: "fs", ToolName: "read", Succeeded: true, StartedAt: now.AddDate(0, 0, -100)},
		{ServerID: "fs", ToolName: "read", Succeeded: true, StartedAt: now.AddDate(0, 0, -120)},
	} {
		require.NoError(t, s.AppendUsage(ctx, rec))
	}

	pruned, err := s.PruneUsage(ctx, now.AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	stats, err := s.UsageStats(ctx, "fs", 365)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCalls)
}

func TestStore_ByTagAndAllTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), nil))
	other := fsSpec()
	other.ID = "fs2"
	other.Tags = []string{"local"}
	require.NoError(t, s.UpsertServer(ctx, other, nil))

	ids, err := s.ByTag(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs", "fs2"}, ids)

	ids, err = s.ByTag(ctx, "storage")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs"}, ids)

	tags, err := s.AllTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"local", "storage"}, tags)
}

func TestStore_UpdateTools(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertServer(ctx, fsSpec(), fsTools()))
	require.NoError(t, s.UpdateTools(ctx, "fs", []models.ToolInfo{
		{Name: "stat", Description: "Stat a path"},
	}))

	rec, err := s.ReadServer(ctx, "fs")
	require.NoError(t, err)
	require.Len(t, rec.Tools, 1)
	assert.Equal(t, "stat", rec.Tools[0].Name)

	assert.ErrorIs(t, s.UpdateTools(ctx, "nope", nil), ErrNotFound)
}
