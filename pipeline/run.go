// SPDX-License-Identifier: MIT
// Package: pipeline
//
// run.go — one analysis run.

package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/cooccurrence"
	"github.com/aujxn/recipe-analysis/expanded"
	"github.com/aujxn/recipe-analysis/hierarchy"
	"github.com/aujxn/recipe-analysis/partition"
)

// Artifact file names inside a run directory.
const (
	LabelsFile       = "ingredient_labels.txt"
	CooccurrenceFile = "cooccurrence_coolist"
	ExpandedFile     = "expanded_coolist"
)

// Result is everything a run produced.
type Result struct {
	RunID        string
	WorkDir      string
	Targets      []int // target ingredient ids, empty without targets
	Cooccurrence *cooccurrence.Relation
	Expanded     *expanded.Relation
	Hierarchy    *hierarchy.Hierarchy
}

// Run executes the analysis over recipes.
// Stage 1 (Index): co-occurrence relation, target names → ids.
// Stage 2 (Expand): star expansion plus target hub.
// Stage 3 (Persist): labels and edge lists into the run directory.
// Stage 4 (Partition): one batch call to the partitioner.
// Stage 5 (Compose): hierarchy over the returned chain.
//
// The metrics textfile, when configured, is written whether or not the run
// succeeds; failing to write it is logged, not returned.
func Run(ctx context.Context, recipes []cooccurrence.Recipe, opts ...Option) (res *Result, err error) {
	cfg := newRunConfig(opts...)
	runID := uuid.New().String()
	log := cfg.log.With(zap.String("run", runID))
	m := cfg.metrics

	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		m.runs.WithLabelValues(status).Inc()
		if cfg.textfile != "" {
			if werr := m.WriteTextfile(cfg.textfile); werr != nil {
				log.Warn("writing metrics textfile", zap.Error(werr))
			}
		}
	}()

	dir := filepath.Join(cfg.baseDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("Run: %w: %w", ErrIO, err)
	}

	// Stage 1: index
	co, err := cooccurrence.BuildParallel(ctx, recipes, cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	targets, err := co.IDs(cfg.targets)
	if err != nil {
		return nil, fmt.Errorf("Run: %w: %w", ErrUnknownIngredient, err)
	}
	m.recipes.Set(float64(co.RecipeCount()))
	m.ingredients.Set(float64(co.NumIngredients()))
	log.Info("indexed corpus", zap.Int("recipes", co.RecipeCount()), zap.Int("ingredients", co.NumIngredients()))

	// Stage 2: expand
	var buildOpts []expanded.BuildOption
	if len(targets) > 0 {
		buildOpts = append(buildOpts, expanded.WithTargetHub(targets...))
	}
	ex, err := expanded.BuildStars(co.NumIngredients(), co.RecipeIngredients(), buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	m.vertices.Set(float64(ex.NumVertices()))
	m.edges.Set(float64(ex.NumEdges()))
	_, components := ex.Components()
	m.components.Set(float64(components))
	log.Info("expanded relation built",
		zap.Int("vertices", ex.NumVertices()), zap.Int("edges", ex.NumEdges()), zap.Int("components", components))

	// Stage 3: persist
	if err := writeArtifacts(dir, co, ex); err != nil {
		return nil, err
	}

	// Stage 4: partition
	p := cfg.partitioner
	if p == nil {
		lopts := append([]partition.Option{partition.WithLogger(log)}, cfg.louvainOpts...)
		p = partition.NewLouvain(append(lopts, partition.WithWorkDir(dir))...)
	}
	start := time.Now()
	chain, err := p.Partition(ctx, ex.Edges(), ex.NumVertices())
	m.partitionSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// Stage 5: compose
	h, err := hierarchy.New(chain, co.Ingredients(), ex)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	m.levels.Set(float64(h.NumLevels()))
	log.Info("hierarchy ready", zap.Ints("level_sizes", h.LevelSizes()))

	return &Result{
		RunID:        runID,
		WorkDir:      dir,
		Targets:      targets,
		Cooccurrence: co,
		Expanded:     ex,
		Hierarchy:    h,
	}, nil
}

// writeArtifacts performs Stage 3.
func writeArtifacts(dir string, co *cooccurrence.Relation, ex *expanded.Relation) error {
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{LabelsFile, co.WriteLabels},
		{CooccurrenceFile, co.WriteCoolist},
		{ExpandedFile, ex.WriteCoolist},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Run: %w: %w", ErrIO, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("Run: %s: %w: %w", filepath.Base(path), ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Run: %w: %w", ErrIO, err)
	}
	return nil
}
