// Package metadata holds PostgreSQL integration tests for the metadata
// store. They exercise the embedded SQL migrations and the same store
// operations the unit tests cover on SQLite.
package metadata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/metadata"
	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/test/util"
)

func newPostgresStore(t *testing.T) *metadata.Store {
	t.Helper()
	store := metadata.NewStore(util.SetupPostgres(t))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func fsSpec(id string) models.ServerSpec {
	return models.ServerSpec{
		ID:          id,
		Name:        "Filesystem",
		Description: "Local file access",
		Launch: models.LaunchSpec{
			Kind:    models.TransportStdio,
			Command: "mcp-server-filesystem",
			Args:    []string{"--root", "/"},
			Env:     map[string]string{"LOG_LEVEL": "info"},
		},
		Capabilities: []string{"filesystem"},
		Tags:         []string{"local"},
	}
}

func fsTools() []models.ToolInfo {
	return []models.ToolInfo{{
		Name:        "read_file",
		Description: "Read a file from disk",
		Schema:      map[string]any{"type": "object", "required": []any{"path"}},
	}}
}

func TestPostgres_UpsertReadRoundTrip(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertServer(ctx, fsSpec("fs"), fsTools()))

	rec, err := store.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, fsSpec("fs"), rec.Spec)
	require.Len(t, rec.Tools, 1)
	assert.Equal(t, "read_file", rec.Tools[0].Name)
	assert.Equal(t, models.StatusUnknown, rec.Health.Status)

	_, err = store.ReadServer(ctx, "ghost")
	assert.ErrorIs(t, err, metadata.ErrNotFound)
}

func TestPostgres_DeleteCascades(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertServer(ctx, fsSpec("fs"), fsTools()))
	require.NoError(t, store.AppendUsage(ctx, models.UsageRecord{
		ServerID:  "fs",
		ToolName:  "read_file",
		StartedAt: time.Now(),
		Duration:  0.1,
		Succeeded: true,
	}))

	require.NoError(t, store.DeleteServer(ctx, "fs"))

	_, err := store.ReadServer(ctx, "fs")
	assert.ErrorIs(t, err, metadata.ErrNotFound)

	stats, err := store.UsageStats(ctx, "fs", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCalls, "usage rows cascade with the server")

	tags, err := store.AllTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestPostgres_FindServersForTask(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertServer(ctx, fsSpec("fs"), fsTools()))

	other := fsSpec("db")
	other.Capabilities = []string{"database"}
	require.NoError(t, store.UpsertServer(ctx, other, nil))

	ids, err := store.FindServersForTask(ctx, "query the filesystem for logs")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs"}, ids)

	// Tool descriptions match too.
	ids, err = store.FindServersForTask(ctx, "read something from disk")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs"}, ids)
}

func TestPostgres_UpdateHealthEWMA(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertServer(ctx, fsSpec("fs"), nil))

	require.NoError(t, store.UpdateHealth(ctx, "fs", models.StatusOnline, 1.0))
	require.NoError(t, store.UpdateHealth(ctx, "fs", models.StatusOnline, 2.0))

	rec, err := store.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, rec.Health.Status)
	assert.InDelta(t, 1.3, rec.Health.EWMAResponseTime, 1e-9)
	assert.Equal(t, 0, rec.Health.ConsecutiveErrors)

	require.NoError(t, store.UpdateHealth(ctx, "fs", models.StatusError, -1))
	rec, err = store.ReadServer(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, rec.Health.Status)
	assert.Equal(t, 1, rec.Health.ConsecutiveErrors)
}
