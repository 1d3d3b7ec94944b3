package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/cooccurrence"
	"github.com/aujxn/recipe-analysis/hierarchy"
	"github.com/aujxn/recipe-analysis/matrix"
	"github.com/aujxn/recipe-analysis/partition"
	"github.com/aujxn/recipe-analysis/pipeline"
)

func recipes() []cooccurrence.Recipe {
	return []cooccurrence.Recipe{
		{ID: 100, Ingredients: []string{"tomato", "basil"}},
		{ID: 200, Ingredients: []string{"tomato", "basil", "garlic"}},
	}
}

// ids: basil 0, tomato 1, garlic 2. Vertices: ingredient hubs 0-2, recipe
// hubs 3-4, instances 5 (basil) 6 (tomato) of recipe 0, then 7 (basil)
// 8 (garlic) 9 (tomato) of recipe 1.
const stream = "0 1\n1 1\n2 1\n3 1\n4 1\n5 0\n6 0\n7 0\n8 2\n9 0\n"

// recorder is a Partitioner that puts every vertex into one aggregate.
type recorder struct {
	edges []artifact.Edge
	n     int
	err   error
}

func (r *recorder) Partition(_ context.Context, edges []artifact.Edge, n int) ([]*matrix.Sparse, error) {
	r.edges, r.n = edges, n
	if r.err != nil {
		return nil, r.err
	}
	elems := make([]matrix.Element, n)
	for v := range elems {
		elems[v] = matrix.Element{Row: v, Col: 0, Value: 1}
	}
	p, err := matrix.New(n, 1, elems)
	if err != nil {
		return nil, err
	}
	return []*matrix.Sparse{p}, nil
}

func TestRun_EndToEnd(t *testing.T) {
	base := t.TempDir()
	textfile := filepath.Join(t.TempDir(), "recipe.prom")
	metrics := pipeline.NewMetrics()

	res, err := pipeline.Run(context.Background(), recipes(),
		pipeline.WithBaseDir(base),
		pipeline.WithPartitioner(&partition.Static{Stream: []byte(stream)}),
		pipeline.WithMetrics(metrics),
		pipeline.WithMetricsTextfile(textfile),
		pipeline.WithWorkers(2),
		pipeline.WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	assert.Len(t, res.RunID, 36)
	assert.Equal(t, filepath.Join(base, res.RunID), res.WorkDir)
	assert.Equal(t, 10, res.Expanded.NumVertices())
	assert.Equal(t, 2, res.Hierarchy.NumLevels())

	aggs, err := res.Hierarchy.Aggregates(1, nil)
	require.NoError(t, err)
	require.Len(t, aggs, 3)
	assert.Equal(t, []hierarchy.IngredientRecipes{
		{Name: "basil", Recipes: []int{0, 1}},
		{Name: "tomato", Recipes: []int{0, 1}},
	}, aggs[0].Ingredients)
	assert.Equal(t, []string{"garlic"}, aggs[2].Names())

	labels, err := os.ReadFile(filepath.Join(res.WorkDir, pipeline.LabelsFile))
	require.NoError(t, err)
	assert.Equal(t, "basil\ntomato\ngarlic", string(labels))
	coolist, err := os.ReadFile(filepath.Join(res.WorkDir, pipeline.CooccurrenceFile))
	require.NoError(t, err)
	assert.Equal(t, "0 1 2\n0 2 1\n1 2 1\n", string(coolist))
	f, err := os.Open(filepath.Join(res.WorkDir, pipeline.ExpandedFile))
	require.NoError(t, err)
	defer f.Close()
	edges, err := artifact.ReadEdges(f)
	require.NoError(t, err)
	assert.Equal(t, res.Expanded.Edges(), edges)

	assert.Equal(t, 10.0, gaugeValue(t, metrics, "recipe_analysis_expanded_vertices"))
	assert.Equal(t, 3.0, gaugeValue(t, metrics, "recipe_analysis_ingredients"))
	assert.Equal(t, 1.0, gaugeValue(t, metrics, "recipe_analysis_expanded_components"))
	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "recipe_analysis_hierarchy_levels 2")
	assert.Contains(t, string(prom), `recipe_analysis_runs_total{status="ok"} 1`)
}

func TestRun_TargetsAddHub(t *testing.T) {
	rec := &recorder{}
	res, err := pipeline.Run(context.Background(), recipes(),
		pipeline.WithBaseDir(t.TempDir()),
		pipeline.WithPartitioner(rec),
		pipeline.WithTargets("garlic"),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Targets)

	hub, ok := res.Expanded.TargetHub()
	require.True(t, ok)
	assert.Equal(t, 10, hub)
	assert.Equal(t, 11, rec.n)
	assert.Contains(t, rec.edges, artifact.Edge{I: 8, J: 10, Weight: 1})

	aggs, err := res.Hierarchy.Aggregates(1, []string{"garlic"})
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Equal(t, []string{"basil", "tomato", "garlic"}, aggs[0].Names())
}

func TestRun_Errors(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		_, err := pipeline.Run(context.Background(), recipes(),
			pipeline.WithBaseDir(t.TempDir()),
			pipeline.WithPartitioner(&recorder{}),
			pipeline.WithTargets("saffron"),
		)
		require.ErrorIs(t, err, pipeline.ErrUnknownIngredient)
		require.ErrorIs(t, err, cooccurrence.ErrUnknownIngredient)
	})
	t.Run("partitioner fails", func(t *testing.T) {
		boom := errors.New("boom")
		metrics := pipeline.NewMetrics()
		_, err := pipeline.Run(context.Background(), recipes(),
			pipeline.WithBaseDir(t.TempDir()),
			pipeline.WithPartitioner(&recorder{err: boom}),
			pipeline.WithMetrics(metrics),
		)
		require.ErrorIs(t, err, boom)
		n, err := testutil.GatherAndCount(metrics.Registry(), "recipe_analysis_runs_total")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
	t.Run("bad stream", func(t *testing.T) {
		_, err := pipeline.Run(context.Background(), recipes(),
			pipeline.WithBaseDir(t.TempDir()),
			pipeline.WithPartitioner(&partition.Static{Stream: []byte("0 0\n")}),
		)
		require.ErrorIs(t, err, hierarchy.ErrMalformedStream)
	})
	t.Run("base dir is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := pipeline.Run(context.Background(), recipes(),
			pipeline.WithBaseDir(file),
			pipeline.WithPartitioner(&recorder{}),
		)
		require.ErrorIs(t, err, pipeline.ErrIO)
	})
	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := pipeline.Run(ctx, recipes(),
			pipeline.WithBaseDir(t.TempDir()),
			pipeline.WithPartitioner(&recorder{}),
			pipeline.WithWorkers(2),
		)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRun_EmptyCorpus(t *testing.T) {
	res, err := pipeline.Run(context.Background(), nil,
		pipeline.WithBaseDir(t.TempDir()),
		pipeline.WithPartitioner(&partition.Static{}),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Expanded.NumVertices())
	assert.Equal(t, 1, res.Hierarchy.NumLevels())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { pipeline.WithWorkers(0) })
	assert.Panics(t, func() { pipeline.WithLogger(nil) })
	assert.Panics(t, func() { pipeline.WithPartitioner(nil) })
	assert.Panics(t, func() { pipeline.WithMetrics(nil) })
}

// gaugeValue reads a single-series gauge from the registry.
func gaugeValue(t *testing.T, m *pipeline.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			require.Len(t, f.GetMetric(), 1)
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}
