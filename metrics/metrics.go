// Package metrics exposes shortest path and word ladder statistics as
// Prometheus metrics.
//
// Metrics are registered on a caller supplied registry so that one-shot
// command runs can dump them to a file and tests can use isolated registries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rhartert/pathfind/ladder"
	"github.com/rhartert/pathfind/sssp"
)

const namespace = "pathfind"

// Collector records the statistics of shortest path and ladder searches.
type Collector struct {
	SSSPRuns        *prometheus.CounterVec
	SSSPPops        *prometheus.CounterVec
	SSSPRelaxations prometheus.Counter
	SSSPReached     prometheus.Histogram

	LadderSearches *prometheus.CounterVec
	LadderExpanded prometheus.Counter
	LadderCompared prometheus.Counter
	LadderLength   prometheus.Histogram
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		SSSPRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sssp",
				Name:      "runs_total",
				Help:      "Number of single-source shortest path computations by frontier",
			},
			[]string{"frontier"},
		),
		SSSPPops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sssp",
				Name:      "frontier_pops_total",
				Help:      "Entries extracted from the frontier, live or stale",
			},
			[]string{"kind"},
		),
		SSSPRelaxations: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sssp",
				Name:      "relaxations_total",
				Help:      "Edges that improved a tentative distance",
			},
		),
		SSSPReached: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "sssp",
				Name:      "reached_vertices",
				Help:      "Vertices reachable from the source per computation",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		LadderSearches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ladder",
				Name:      "searches_total",
				Help:      "Word ladder searches by outcome",
			},
			[]string{"outcome"},
		),
		LadderExpanded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ladder",
				Name:      "expanded_total",
				Help:      "Partial ladders taken out of the queue",
			},
		),
		LadderCompared: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ladder",
				Name:      "compared_total",
				Help:      "Adjacency tests between words",
			},
		),
		LadderLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "ladder",
				Name:      "length_words",
				Help:      "Number of words of the ladders found",
				Buckets:   prometheus.LinearBuckets(2, 1, 10),
			},
		),
	}
}

// ObserveShortestPaths records the statistics of one call to sssp.Solve.
func (c *Collector) ObserveShortestPaths(frontier sssp.Frontier, st sssp.Stats) {
	c.SSSPRuns.WithLabelValues(frontier.String()).Inc()
	c.SSSPPops.WithLabelValues("live").Add(float64(st.Pops - st.StalePops))
	c.SSSPPops.WithLabelValues("stale").Add(float64(st.StalePops))
	c.SSSPRelaxations.Add(float64(st.Relaxations))
	c.SSSPReached.Observe(float64(st.Reached))
}

// ObserveLadder records the statistics of one call to ladder.Search and the
// length of the returned ladder.
func (c *Collector) ObserveLadder(st ladder.Stats, length int) {
	c.LadderSearches.WithLabelValues(st.Outcome.String()).Inc()
	c.LadderExpanded.Add(float64(st.Expanded))
	c.LadderCompared.Add(float64(st.Compared))
	if st.Outcome == ladder.OutcomeFound {
		c.LadderLength.Observe(float64(length))
	}
}

// WriteFile writes the metrics gathered by g to path in the Prometheus text
// format.
func WriteFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
