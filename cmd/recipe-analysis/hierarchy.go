// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aujxn/recipe-analysis/partition"
	"github.com/aujxn/recipe-analysis/pipeline"
)

func newHierarchyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hierarchy",
		Short: "Partition the expanded graph and print aggregates",
		Long: `hierarchy runs the full analysis and prints the ingredient aggregates at
--level. With --target, the graph is biased toward the targets and only
aggregates containing every target are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd.Context())
			if err != nil {
				return err
			}
			aggs, err := res.Hierarchy.Aggregates(a.cfg.Query.Level, a.cfg.Query.Targets)
			if err != nil {
				return err
			}
			return renderAggregates(cmd.OutOrStdout(), a.cfg.Query.Format, aggs, res.Cooccurrence.RecipeIDs())
		},
	}
}

func newLevelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Partition the expanded graph and print level sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd.Context())
			if err != nil {
				return err
			}
			return renderLevels(cmd.OutOrStdout(), a.cfg.Query.Format, res)
		},
	}
}

// run executes the pipeline with the configured corpus and partitioner.
func (a *app) run(ctx context.Context) (*pipeline.Result, error) {
	recipes, err := loadRecipes(ctx, a.cfg, a.log)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{
		pipeline.WithTargets(a.cfg.Query.Targets...),
		pipeline.WithWorkers(a.cfg.Workers),
		pipeline.WithLogger(a.log),
		pipeline.WithMetricsTextfile(a.cfg.Metrics.Textfile),
	}
	if a.cfg.Louvain.WorkDir != "" {
		opts = append(opts, pipeline.WithBaseDir(a.cfg.Louvain.WorkDir))
	}
	if a.cfg.Louvain.Assignments != "" {
		replay, err := partition.StaticFile(a.cfg.Louvain.Assignments)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithPartitioner(replay))
	} else {
		opts = append(opts, pipeline.WithLouvainOptions(
			partition.WithConvert(a.cfg.Louvain.Convert),
			partition.WithCommunity(a.cfg.Louvain.Community),
		))
	}

	res, err := pipeline.Run(ctx, recipes, opts...)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	return res, nil
}
