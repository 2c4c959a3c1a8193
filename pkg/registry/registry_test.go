package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
)

func newTestRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "registry.json")
	r, err := New(file)
	require.NoError(t, err)
	return r, file
}

func testSpec(id string, caps ...string) models.ServerSpec {
	return models.ServerSpec{
		ID:   id,
		Name: id,
		Launch: models.LaunchSpec{
			Kind:    models.TransportStdio,
			Command: "mcp-" + id,
		},
		Capabilities: caps,
	}
}

func TestRegistry_RegisterLookup(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("files", "filesystem")))

	spec, health, err := r.Lookup("files")
	require.NoError(t, err)
	assert.Equal(t, "files", spec.ID)
	assert.Equal(t, []string{"filesystem"}, spec.Capabilities)
	assert.Equal(t, models.StatusUnknown, health.Status)

	_, _, err = r.Lookup("nope")
	assert.ErrorIs(t, err, ErrServerNotFound)
}

func TestRegistry_RegisterEmptyID(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.Error(t, r.Register(models.ServerSpec{}))
}

func TestRegistry_ReRegisterKeepsHealth(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("files", "filesystem")))
	require.NoError(t, r.UpdateHealth("files", models.StatusOnline, 0.25))

	// Replacing the spec must not reset the health history.
	require.NoError(t, r.Register(testSpec("files", "filesystem", "search")))
	health, err := r.Health("files")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, health.Status)
	assert.InDelta(t, 0.25, health.EWMAResponseTime, 1e-9)
}

func TestRegistry_Unregister(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("files")))
	assert.True(t, r.Unregister("files"))
	assert.False(t, r.Unregister("files"))
	assert.False(t, r.Has("files"))
}

func TestRegistry_ListAllSorted(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("web")))
	require.NoError(t, r.Register(testSpec("db")))
	require.NoError(t, r.Register(testSpec("files")))

	specs := r.ListAll()
	require.Len(t, specs, 3)
	assert.Equal(t, "db", specs[0].ID)
	assert.Equal(t, "files", specs[1].ID)
	assert.Equal(t, "web", specs[2].ID)
}

func TestRegistry_ByCapabilitiesOnlineOnly(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("files", "filesystem", "search")))
	require.NoError(t, r.Register(testSpec("web", "web", "search")))
	require.NoError(t, r.Register(testSpec("db", "database")))

	// No server has been probed online yet.
	assert.Empty(t, r.ByCapability("search"))

	require.NoError(t, r.UpdateHealth("files", models.StatusOnline, 0.1))
	require.NoError(t, r.UpdateHealth("web", models.StatusOnline, 0.1))
	require.NoError(t, r.UpdateHealth("db", models.StatusOffline, -1))

	assert.Equal(t, []string{"files", "web"}, r.ByCapability("search"))
	assert.Equal(t, []string{"files"}, r.ByCapabilities([]string{"filesystem", "search"}, true))
	assert.Equal(t, []string{"files", "web"}, r.ByCapabilities([]string{"filesystem", "web"}, false))
	assert.Empty(t, r.ByCapability("database"), "offline servers are excluded")

	// Capability matching is case-insensitive.
	assert.Equal(t, []string{"files", "web"}, r.ByCapability("SEARCH"))
}

func TestRegistry_UpdateHealth(t *testing.T) {
	r, _ := newTestRegistry(t)
	require.NoError(t, r.Register(testSpec("files")))

	require.NoError(t, r.UpdateHealth("files", models.StatusOffline, -1))
	require.NoError(t, r.UpdateHealth("files", models.StatusError, -1))
	health, err := r.Health("files")
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, health.Status)
	assert.Equal(t, 2, health.ConsecutiveErrors)
	assert.True(t, health.LastSuccessAt.IsZero())
	assert.False(t, health.LastProbeAt.IsZero())

	require.NoError(t, r.UpdateHealth("files", models.StatusOnline, 1.0))
	health, err = r.Health("files")
	require.NoError(t, err)
	assert.Equal(t, 0, health.ConsecutiveErrors)
	assert.False(t, health.LastSuccessAt.IsZero())
	assert.InDelta(t, 1.0, health.EWMAResponseTime, 1e-9)

	// Second sample folds in with alpha 0.3.
	require.NoError(t, r.UpdateHealth("files", models.StatusOnline, 2.0))
	health, _ = r.Health("files")
	assert.InDelta(t, 0.3*2.0+0.7*1.0, health.EWMAResponseTime, 1e-9)

	assert.ErrorIs(t, r.UpdateHealth("nope", models.StatusOnline, 0), ErrServerNotFound)
}

func TestRegistry_OnlineOfflineIDs(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("a")))
	require.NoError(t, r.Register(testSpec("b")))
	require.NoError(t, r.Register(testSpec("c")))
	require.NoError(t, r.UpdateHealth("b", models.StatusOnline, 0.1))

	assert.Equal(t, []string{"b"}, r.OnlineIDs())
	assert.Equal(t, []string{"a", "c"}, r.OfflineIDs(), "unknown counts as not online")
}

func TestRegistry_UpdateCapabilities(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Register(testSpec("files", "filesystem")))
	require.NoError(t, r.UpdateHealth("files", models.StatusOnline, 0.1))
	require.NoError(t, r.UpdateCapabilities("files", []string{"filesystem", "git"}))

	assert.Equal(t, []string{"files"}, r.ByCapability("git"))
	assert.Equal(t, []string{"filesystem", "git"}, r.AllCapabilities())
}

func TestRegistry_PersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "registry.json")

	r, err := New(file)
	require.NoError(t, err)
	require.NoError(t, r.Register(testSpec("files", "filesystem")))
	require.NoError(t, r.UpdateHealth("files", models.StatusOnline, 0.5))

	r2, err := New(file)
	require.NoError(t, err)

	spec, health, err := r2.Lookup("files")
	require.NoError(t, err)
	assert.Equal(t, "files", spec.ID)
	assert.Equal(t, models.StatusOnline, health.Status)
	assert.InDelta(t, 0.5, health.EWMAResponseTime, 1e-9)
	assert.Equal(t, []string{"files"}, r2.ByCapability("filesystem"))
}

func TestRegistry_ConcurrentRegistersPersistEveryServer(t *testing.T) {
	r, file := newTestRegistry(t)

	want := make([]string, 8)
	for i := range want {
		want[i] = fmt.Sprintf("srv-%d", i)
	}

	var wg sync.WaitGroup
	for _, id := range want {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Register(testSpec(id)))
		}()
	}
	wg.Wait()

	// Every successful Register must be visible in the persisted file, no
	// matter how the writes interleaved.
	r2, err := New(file)
	require.NoError(t, err)
	got := make([]string, 0, len(want))
	for _, spec := range r2.ListAll() {
		got = append(got, spec.ID)
	}
	assert.ElementsMatch(t, want, got)
}

func TestRegistry_CorruptFileFallsBackToBackup(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "registry.json")

	r, err := New(file)
	require.NoError(t, err)
	require.NoError(t, r.Register(testSpec("files", "filesystem")))
	// A second mutation rotates the first good file into the backup slot.
	require.NoError(t, r.Register(testSpec("web", "web")))

	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o644))

	r2, err := New(file)
	require.NoError(t, err)
	assert.True(t, r2.Has("files"), "backup should restore the earlier state")
}

func TestRegistry_CorruptFileNoBackupStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "registry.json")
	require.NoError(t, os.WriteFile(file, []byte("garbage"), 0o644))

	r, err := New(file)
	require.NoError(t, err)
	assert.Empty(t, r.ListAll())
}
