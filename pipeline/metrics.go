// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the run gauges on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	runs             *prometheus.CounterVec
	recipes          prometheus.Gauge
	ingredients      prometheus.Gauge
	vertices         prometheus.Gauge
	edges            prometheus.Gauge
	components       prometheus.Gauge
	levels           prometheus.Gauge
	partitionSeconds prometheus.Histogram
}

// NewMetrics registers the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "recipe_analysis_runs_total",
			Help: "Pipeline runs by outcome",
		}, []string{"status"}),
		recipes: f.NewGauge(prometheus.GaugeOpts{
			Name: "recipe_analysis_recipes",
			Help: "Recipes in the analysed corpus",
		}),
		ingredients: f.NewGauge(prometheus.GaugeOpts{
			Name: "recipe_analysis_ingredients",
			Help: "Distinct ingredients in the analysed corpus",
		}),
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Name: "recipe_analysis_expanded_vertices",
			Help: "Vertices of the expanded relation",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "recipe_analysis_expanded_edges",
			Help: "Edges of the expanded relation",
		}),
		components: f.NewGauge(prometheus.GaugeOpts{
			Name: "recipe_analysis_expanded_components",
			Help: "Connected components of the expanded relation",
		}),
		levels: f.NewGauge(prometheus.GaugeOpts{
			Name: "recipe_analysis_hierarchy_levels",
			Help: "Levels of the interpolation hierarchy, including level 0",
		}),
		partitionSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "recipe_analysis_partition_duration_seconds",
			Help:    "Wall time of the partitioning batch call",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}
}

// Registry exposes the registry for scraping or inspection.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes every metric to path in the node-exporter textfile
// format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("WriteTextfile(%q): %w: %w", path, ErrIO, err)
	}
	return nil
}
