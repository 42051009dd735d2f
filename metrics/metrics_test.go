package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhartert/pathfind/ladder"
	"github.com/rhartert/pathfind/sssp"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector(reg), reg
}

func TestObserveShortestPaths(t *testing.T) {
	c, _ := newTestCollector(t)

	c.ObserveShortestPaths(sssp.LazyFrontier, sssp.Stats{
		Pushes:      6,
		Pops:        6,
		StalePops:   2,
		Relaxations: 5,
		Reached:     4,
	})
	c.ObserveShortestPaths(sssp.IndexedFrontier, sssp.Stats{Pops: 1, Reached: 1})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.SSSPRuns.WithLabelValues("lazy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SSSPRuns.WithLabelValues("indexed")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.SSSPPops.WithLabelValues("live")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.SSSPPops.WithLabelValues("stale")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.SSSPRelaxations))
	assert.Equal(t, 1, testutil.CollectAndCount(c.SSSPReached))
}

func TestObserveLadder(t *testing.T) {
	c, _ := newTestCollector(t)

	c.ObserveLadder(ladder.Stats{Outcome: ladder.OutcomeFound, Expanded: 3, Compared: 10}, 4)
	c.ObserveLadder(ladder.Stats{Outcome: ladder.OutcomeNotFound, Expanded: 2, Compared: 5}, 0)
	c.ObserveLadder(ladder.Stats{Outcome: ladder.OutcomeRejected}, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.LadderSearches.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.LadderSearches.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.LadderSearches.WithLabelValues("rejected")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.LadderExpanded))
	assert.Equal(t, 15.0, testutil.ToFloat64(c.LadderCompared))
}

func TestNewCollector_duplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	assert.Panics(t, func() { NewCollector(reg) })
}

func TestWriteFile(t *testing.T) {
	c, reg := newTestCollector(t)
	c.ObserveLadder(ladder.Stats{Outcome: ladder.OutcomeFound, Expanded: 1}, 2)
	path := filepath.Join(t.TempDir(), "metrics.prom")

	require.NoError(t, WriteFile(path, reg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `pathfind_ladder_searches_total{outcome="found"} 1`)
	assert.Contains(t, string(content), "pathfind_ladder_length_words_count 1")
}
