package routing

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/registry"
)

type fakeAnalyzer struct {
	analysis models.QueryAnalysis
	err      error
	calls    int
}

func (a *fakeAnalyzer) AnalyzeQuery(context.Context, string, []string) (models.QueryAnalysis, error) {
	a.calls++
	return a.analysis, a.err
}

type fakeSearcher struct {
	ids   []string
	calls int
}

func (s *fakeSearcher) FindServersForTask(context.Context, string) ([]string, error) {
	s.calls++
	return s.ids, nil
}

type fakeStrategy struct {
	name       string
	servers    []string
	confidence float64
	err        error
}

func (s *fakeStrategy) Name() string { return s.name }

func (s *fakeStrategy) Route(context.Context, string) ([]string, float64, error) {
	return s.servers, s.confidence, s.err
}

func newTestRegistry(t *testing.T, servers map[string][]string) *registry.Registry {
	t.Helper()
	reg, err := registry.New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)
	for id, caps := range servers {
		require.NoError(t, reg.Register(models.ServerSpec{ID: id, Capabilities: caps}))
		require.NoError(t, reg.UpdateHealth(id, models.StatusOnline, 0.1))
	}
	return reg
}

func TestKeywordAnalyze(t *testing.T) {
	caps := []string{"filesystem", "web_search", "database"}

	analysis := KeywordAnalyze("please search the filesystem", caps)
	assert.Equal(t, []string{"filesystem", "web_search"}, analysis.RequiredCapabilities)
	assert.Equal(t, 0.5, analysis.Confidence)
	assert.Equal(t, MethodKeyword, analysis.Method)

	// No token of length > 3 matches anything.
	analysis = KeywordAnalyze("do it now", caps)
	assert.Empty(t, analysis.RequiredCapabilities)
	assert.Zero(t, analysis.Confidence)
}

func TestParseAnalysis(t *testing.T) {
	known := []string{"filesystem", "web_search"}

	analysis, err := parseAnalysis(
		`{"required_capabilities":["Filesystem","unknown_cap"],"confidence":0.9,"reasoning":"files"}`,
		known)
	require.NoError(t, err)
	assert.Equal(t, []string{"filesystem"}, analysis.RequiredCapabilities, "unknown capabilities are filtered")
	assert.Equal(t, 0.9, analysis.Confidence)
	assert.Equal(t, "files", analysis.Reasoning)
	assert.Equal(t, MethodLLM, analysis.Method)

	// Missing confidence defaults to 0.7.
	analysis, err = parseAnalysis(`{"required_capabilities":["web_search"]}`, known)
	require.NoError(t, err)
	assert.Equal(t, 0.7, analysis.Confidence)

	// Fenced responses are tolerated.
	analysis, err = parseAnalysis("```json\n{\"required_capabilities\":[\"web_search\"]}\n```", known)
	require.NoError(t, err)
	assert.Equal(t, []string{"web_search"}, analysis.RequiredCapabilities)

	// Out-of-range confidence is clamped.
	analysis, err = parseAnalysis(`{"required_capabilities":[],"confidence":3.5}`, known)
	require.NoError(t, err)
	assert.Equal(t, 1.0, analysis.Confidence)

	_, err = parseAnalysis("sorry, I cannot help with that", known)
	assert.Error(t, err)
}

func TestRouter_RequireAllBeforeAny(t *testing.T) {
	reg := newTestRegistry(t, map[string][]string{
		"both":   {"filesystem", "file_read"},
		"single": {"filesystem"},
	})
	r := New(reg, nil, &fakeAnalyzer{analysis: models.QueryAnalysis{
		RequiredCapabilities: []string{"filesystem", "file_read"},
		Confidence:           0.9,
	}})

	result := r.Route(context.Background(), "read a file")
	assert.Equal(t, []string{"both"}, result.SelectedServers, "AND match wins when available")
	assert.Equal(t, 0.9, result.Confidence)
}

func TestRouter_FallsBackToAnyMatch(t *testing.T) {
	// No server has both capabilities, so the AND query is empty and the OR
	// query returns both.
	reg := newTestRegistry(t, map[string][]string{
		"a": {"search"},
		"b": {"web_search"},
	})
	r := New(reg, nil, nil)

	result := r.Route(context.Background(), "search the web")
	assert.ElementsMatch(t, []string{"a", "b"}, result.SelectedServers)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestRouter_TaskSearchFallback(t *testing.T) {
	reg := newTestRegistry(t, map[string][]string{
		"fs": {"filesystem"},
	})
	searcher := &fakeSearcher{ids: []string{"fs"}}
	r := New(reg, searcher, nil)

	// No capability matches the query tokens; the task search decides.
	result := r.Route(context.Background(), "please summarize yesterday")
	assert.Equal(t, []string{"fs"}, result.SelectedServers)
	assert.Equal(t, 1, searcher.calls)
	assert.Zero(t, result.Confidence)
}

func TestRouter_AllOnlineFallback(t *testing.T) {
	reg := newTestRegistry(t, map[string][]string{
		"a": {"filesystem"},
		"b": {"database"},
	})
	r := New(reg, &fakeSearcher{}, nil)

	result := r.Route(context.Background(), "xyzzy")
	assert.Equal(t, []string{"a", "b"}, result.SelectedServers, "last resort is every online server")
}

func TestRouter_AnalyzerErrorFallsBackToKeyword(t *testing.T) {
	reg := newTestRegistry(t, map[string][]string{
		"fs": {"filesystem"},
	})
	analyzer := &fakeAnalyzer{err: fmt.Errorf("model unavailable")}
	r := New(reg, nil, analyzer)

	result := r.Route(context.Background(), "browse the filesystem")
	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, []string{"fs"}, result.SelectedServers)
	assert.Equal(t, 0.5, result.Confidence, "keyword fallback confidence")
}

func TestRouter_DeterministicForFixedInputs(t *testing.T) {
	reg := newTestRegistry(t, map[string][]string{
		"a": {"search"},
		"b": {"web_search"},
	})
	r := New(reg, nil, nil)

	first := r.Route(context.Background(), "search the web")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Route(context.Background(), "search the web"))
	}
}

func TestRouter_StrategyOverride(t *testing.T) {
	reg := newTestRegistry(t, map[string][]string{
		"fs": {"filesystem"},
	})
	analyzer := &fakeAnalyzer{analysis: models.QueryAnalysis{Confidence: 0.9}}
	r := New(reg, nil, analyzer)

	r.SetStrategies([]Strategy{
		&fakeStrategy{name: "b-strategy", servers: []string{"from-b"}, confidence: 0.8},
		&fakeStrategy{name: "a-strategy", servers: []string{"from-a"}, confidence: 0.8},
		&fakeStrategy{name: "weak", servers: []string{"from-weak"}, confidence: 0.2},
	})

	result := r.Route(context.Background(), "anything")
	assert.Equal(t, []string{"from-a"}, result.SelectedServers,
		"highest confidence wins, ties broken by name")
	assert.Equal(t, 0.8, result.Confidence)
	assert.Zero(t, analyzer.calls, "strategies bypass the analyzer")

	// A failing strategy falls out of the vote.
	r.SetStrategies([]Strategy{
		&fakeStrategy{name: "broken", err: fmt.Errorf("boom"), confidence: 1.0},
		&fakeStrategy{name: "ok", servers: []string{"s"}, confidence: 0.3},
	})
	result = r.Route(context.Background(), "anything")
	assert.Equal(t, []string{"s"}, result.SelectedServers)

	// All strategies failing falls through to the normal cascade.
	r.SetStrategies([]Strategy{&fakeStrategy{name: "broken", err: fmt.Errorf("boom")}})
	result = r.Route(context.Background(), "browse the filesystem")
	assert.Equal(t, []string{"fs"}, result.SelectedServers)
}
