// SPDX-License-Identifier: MIT

package pipeline

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/partition"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	baseDir     string
	targets     []string
	workers     int
	partitioner partition.Partitioner
	louvainOpts []partition.Option
	metrics     *Metrics
	textfile    string
	log         *zap.Logger
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		baseDir: filepath.Join(os.TempDir(), "recipe-analysis"),
		workers: 1,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.metrics == nil {
		cfg.metrics = NewMetrics()
	}
	return cfg
}

// WithBaseDir sets the directory under which run directories are created.
func WithBaseDir(dir string) Option {
	return func(c *runConfig) { c.baseDir = dir }
}

// WithTargets biases the expanded relation toward the named ingredients
// through a target hub.
func WithTargets(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(c *runConfig) { c.targets = append(c.targets, cp...) }
}

// WithWorkers sets the number of co-occurrence workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pipeline: WithWorkers requires n >= 1")
	}
	return func(c *runConfig) { c.workers = n }
}

// WithPartitioner replaces the default Louvain runner.
func WithPartitioner(p partition.Partitioner) Option {
	if p == nil {
		panic("pipeline: WithPartitioner(nil)")
	}
	return func(c *runConfig) { c.partitioner = p }
}

// WithLouvainOptions configures the default Louvain runner. Its work dir is
// always the run directory.
func WithLouvainOptions(opts ...partition.Option) Option {
	return func(c *runConfig) { c.louvainOpts = append(c.louvainOpts, opts...) }
}

// WithMetrics records into m instead of a per-run registry.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("pipeline: WithMetrics(nil)")
	}
	return func(c *runConfig) { c.metrics = m }
}

// WithMetricsTextfile writes the metrics to path when the run ends.
func WithMetricsTextfile(path string) Option {
	return func(c *runConfig) { c.textfile = path }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(c *runConfig) { c.log = log }
}
