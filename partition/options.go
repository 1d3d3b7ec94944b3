// SPDX-License-Identifier: MIT

package partition

import "go.uber.org/zap"

// Option configures a Louvain runner.
type Option func(*Louvain)

// WithConvert sets the path of the edge-list → binary graph converter.
// Panics on an empty path.
func WithConvert(path string) Option {
	if path == "" {
		panic("partition: WithConvert(\"\")")
	}
	return func(l *Louvain) { l.convert = path }
}

// WithCommunity sets the path of the multilevel community binary.
// Panics on an empty path.
func WithCommunity(path string) Option {
	if path == "" {
		panic("partition: WithCommunity(\"\")")
	}
	return func(l *Louvain) { l.community = path }
}

// WithWorkDir keeps every exchanged artifact in dir (created if missing).
// Without it each run uses a fresh temporary directory that is removed
// afterwards.
func WithWorkDir(dir string) Option {
	return func(l *Louvain) { l.workDir = dir }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("partition: WithLogger(nil)")
	}
	return func(l *Louvain) { l.log = log }
}
