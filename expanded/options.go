// SPDX-License-Identifier: MIT
// Package: expanded
//
// options.go — functional options for BuildStars.

package expanded

// BuildOption customises BuildStars.
type BuildOption func(*buildConfig)

// buildConfig is the resolved option set.
type buildConfig struct {
	targets []int // ingredient ids for target-hub injection; nil = none
}

// WithTargetHub requests target-hub injection for the given ingredient ids
// once the stars are built (see Relation.ConnectTargetHub). Ids are validated
// by BuildStars, not here.
func WithTargetHub(ids ...int) BuildOption {
	cp := append([]int(nil), ids...)
	return func(c *buildConfig) {
		c.targets = append(c.targets, cp...)
	}
}

// newBuildConfig applies opts over the zero configuration.
func newBuildConfig(opts ...BuildOption) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
