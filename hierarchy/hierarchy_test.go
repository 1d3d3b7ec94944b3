package hierarchy_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/expanded"
	"github.com/aujxn/recipe-analysis/hierarchy"
	"github.com/aujxn/recipe-analysis/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"tomato", "basil", "garlic"}

// level 0: hubs 0-4 → 1, tomato/basil instances 5-8 → 0, garlic instance 9 → 2
// level 1: {0,1} → 0, {2} → 1
const stream = `0 1
1 1
2 1
3 1
4 1
5 0
6 0
7 0
8 0
9 2
0 0
1 0
2 1
`

func sampleRelation(t *testing.T) *expanded.Relation {
	t.Helper()
	rel, err := expanded.BuildStars(3, [][]int{{0, 1}, {0, 1, 2}})
	require.NoError(t, err)
	return rel
}

func sampleHierarchy(t *testing.T) *hierarchy.Hierarchy {
	t.Helper()
	rel := sampleRelation(t)
	chain, err := hierarchy.Parse(strings.NewReader(stream), rel.NumVertices())
	require.NoError(t, err)
	h, err := hierarchy.New(chain, names, rel)
	require.NoError(t, err)
	return h
}

func TestParse_InfersLevelSizes(t *testing.T) {
	chain, err := hierarchy.Parse(strings.NewReader(stream), 10)
	require.NoError(t, err)
	require.Len(t, chain, 2)

	assert.Equal(t, 10, chain[0].Rows())
	assert.Equal(t, 3, chain[0].Cols())
	assert.Equal(t, 3, chain[1].Rows())
	assert.Equal(t, 2, chain[1].Cols())
	for _, p := range chain {
		assert.True(t, p.IsPartition())
	}
	got, ok := chain[0].Assignment()
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 0, 0, 0, 0, 2}, got)
}

func TestParse_EmptyStream(t *testing.T) {
	chain, err := hierarchy.Parse(strings.NewReader("\n\n"), 10)
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
	}{
		{"short level", "0 0\n1 0\n", 3},
		{"short second level", "0 0\n1 1\n0 0\n", 2},
		{"node out of range", "0 0\n2 0\n", 2},
		{"node repeated", "0 0\n0 1\n", 2},
		{"negative group", "0 0\n1 -1\n", 2},
		{"level grows", "0 5\n1 5\n", 2},
		{"group id gap", "0 0\n1 2\n2 2\n", 3},
		{"unparsable", "0 zero\n", 1},
		{"three fields", "0 0 0\n", 1},
		{"negative n", "", -1},
		{"records for zero vertices", "0 0\n", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hierarchy.Parse(strings.NewReader(tc.input), tc.n)
			require.ErrorIs(t, err, hierarchy.ErrMalformedStream)
		})
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParse_IOFailure(t *testing.T) {
	_, err := hierarchy.Parse(failReader{}, 3)
	require.ErrorIs(t, err, hierarchy.ErrIO)
}

func TestNew_Validation(t *testing.T) {
	rel := sampleRelation(t)
	p0, err := hierarchy.Parse(strings.NewReader(stream), 10)
	require.NoError(t, err)

	_, err = hierarchy.New(p0, names, nil)
	require.ErrorIs(t, err, hierarchy.ErrNilRelation)

	_, err = hierarchy.New(p0, names[:2], rel)
	require.ErrorIs(t, err, hierarchy.ErrLabelMismatch)

	// chain does not start at the relation's vertex count
	short, err := matrix.Identity(9)
	require.NoError(t, err)
	_, err = hierarchy.New([]*matrix.Sparse{short}, names, rel)
	require.ErrorIs(t, err, hierarchy.ErrChainMismatch)

	// P_1 rows differ from P_0 cols
	wrong, err := matrix.Identity(4)
	require.NoError(t, err)
	_, err = hierarchy.New([]*matrix.Sparse{p0[0], wrong}, names, rel)
	require.ErrorIs(t, err, hierarchy.ErrChainMismatch)

	// a row mapped to two aggregates
	twoHot, err := matrix.New(10, 2, []matrix.Element{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1}})
	require.NoError(t, err)
	_, err = hierarchy.New([]*matrix.Sparse{twoHot}, names, rel)
	require.ErrorIs(t, err, hierarchy.ErrChainMismatch)

	_, err = hierarchy.New([]*matrix.Sparse{nil}, names, rel)
	require.ErrorIs(t, err, hierarchy.ErrChainMismatch)

	// 10 vertices spread over 12 aggregates
	elems := make([]matrix.Element, 10)
	for v := range elems {
		elems[v] = matrix.Element{Row: v, Col: v + 2, Value: 1}
	}
	grows, err := matrix.New(10, 12, elems)
	require.NoError(t, err)
	require.True(t, grows.IsPartition())
	_, err = hierarchy.New([]*matrix.Sparse{grows}, names, rel)
	require.ErrorIs(t, err, hierarchy.ErrChainMismatch)
}

func TestHierarchy_Levels(t *testing.T) {
	h := sampleHierarchy(t)

	assert.Equal(t, 3, h.NumLevels())
	assert.Equal(t, []int{10, 3, 2}, h.LevelSizes())
	assert.Len(t, h.Interpolations(), 2)
	assert.Equal(t, names, h.Names())

	id, err := h.Partition(0)
	require.NoError(t, err)
	want, err := matrix.Identity(10)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(want, id))

	p2, err := h.Partition(2)
	require.NoError(t, err)
	got, ok := p2.Assignment()
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, got)

	for _, level := range []int{-1, 3} {
		_, err := h.Partition(level)
		require.ErrorIs(t, err, hierarchy.ErrLevelOutOfRange)
		_, err = h.Aggregates(level, nil)
		require.ErrorIs(t, err, hierarchy.ErrLevelOutOfRange)
	}
}

func TestAggregates_LevelOne(t *testing.T) {
	h := sampleHierarchy(t)

	aggs, err := h.Aggregates(1, nil)
	require.NoError(t, err)
	assert.Equal(t, []hierarchy.Aggregate{
		{ID: 0, Ingredients: []hierarchy.IngredientRecipes{
			{Name: "basil", Recipes: []int{0, 1}},
			{Name: "tomato", Recipes: []int{0, 1}},
		}},
		{ID: 1, Ingredients: []hierarchy.IngredientRecipes{}},
		{ID: 2, Ingredients: []hierarchy.IngredientRecipes{
			{Name: "garlic", Recipes: []int{1}},
		}},
	}, aggs)
	assert.Equal(t, []string{"basil", "tomato"}, aggs[0].Names())
}

func TestAggregates_TargetFilter(t *testing.T) {
	h := sampleHierarchy(t)

	aggs, err := h.Aggregates(1, []string{"garlic"})
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Equal(t, 2, aggs[0].ID)
	assert.Equal(t, []string{"garlic"}, aggs[0].Names())

	aggs, err = h.Aggregates(1, []string{"garlic", "basil"})
	require.NoError(t, err)
	assert.Empty(t, aggs)

	aggs, err = h.Aggregates(2, []string{"tomato", "basil"})
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Equal(t, 0, aggs[0].ID)

	aggs, err = h.Aggregates(1, []string{"saffron"})
	require.NoError(t, err)
	assert.Empty(t, aggs)
}

func TestAggregates_LevelZeroIsIdentity(t *testing.T) {
	h := sampleHierarchy(t)

	aggs, err := h.Aggregates(0, nil)
	require.NoError(t, err)
	require.Len(t, aggs, 10)
	for v := 0; v < 5; v++ {
		assert.Empty(t, aggs[v].Ingredients, "hub %d", v)
	}
	assert.Equal(t, []hierarchy.IngredientRecipes{{Name: "tomato", Recipes: []int{0}}}, aggs[5].Ingredients)
	assert.Equal(t, []hierarchy.IngredientRecipes{{Name: "garlic", Recipes: []int{1}}}, aggs[9].Ingredients)
}

func TestAggregates_OrderByCountThenName(t *testing.T) {
	// garlic in recipes 0,1,2; basil and anise in recipe 1 only
	rel, err := expanded.BuildStars(3, [][]int{{1}, {2, 1, 0}, {1}})
	require.NoError(t, err)
	n := rel.NumVertices()
	records := make([]artifact.Assignment, n)
	for v := range records {
		records[v] = artifact.Assignment{Node: v, Group: 0}
	}
	chain, err := hierarchy.FromAssignments(records, n)
	require.NoError(t, err)
	h, err := hierarchy.New(chain, []string{"basil", "garlic", "anise"}, rel)
	require.NoError(t, err)

	aggs, err := h.Aggregates(1, nil)
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Equal(t, []hierarchy.IngredientRecipes{
		{Name: "garlic", Recipes: []int{0, 1, 2}},
		{Name: "anise", Recipes: []int{1}},
		{Name: "basil", Recipes: []int{1}},
	}, aggs[0].Ingredients)
}

func TestAggregates_Deterministic(t *testing.T) {
	h := sampleHierarchy(t)
	for level := 0; level < h.NumLevels(); level++ {
		a, err := h.Aggregates(level, nil)
		require.NoError(t, err)
		b, err := h.Aggregates(level, nil)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCoarseAdjacency(t *testing.T) {
	h := sampleHierarchy(t)

	c, err := h.CoarseAdjacency(1)
	require.NoError(t, err)
	require.Equal(t, 3, c.Rows())
	require.True(t, c.IsSymmetric())

	at := func(i, j int) int {
		v, err := c.At(i, j)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, 8, at(0, 1)) // every tomato/basil spoke ends at a hub
	assert.Equal(t, 2, at(1, 2))
	assert.Zero(t, at(0, 0))
	assert.Zero(t, at(0, 2))

	fine, err := h.CoarseAdjacency(0)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(h.AdjacencyMatrix(), fine))

	_, err = h.CoarseAdjacency(5)
	require.ErrorIs(t, err, hierarchy.ErrLevelOutOfRange)
}

// Every composed partition equals following each vertex through the
// per-level assignments, and stays a partition.
func TestPartition_CompositionLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rel, err := expanded.BuildStars(5, [][]int{{0, 1, 2}, {2, 3}, {4, 0}, {1, 3, 4}})
	require.NoError(t, err)

	size := rel.NumVertices()
	var records []artifact.Assignment
	var levels [][]int
	for size > 1 {
		groups := 1 + rng.Intn(size-1)
		assign := make([]int, size)
		for v := range assign {
			// v < groups keeps ids contiguous
			if v < groups {
				assign[v] = v
			} else {
				assign[v] = rng.Intn(groups)
			}
			records = append(records, artifact.Assignment{Node: v, Group: assign[v]})
		}
		levels = append(levels, assign)
		size = groups
	}

	chain, err := hierarchy.FromAssignments(records, rel.NumVertices())
	require.NoError(t, err)
	require.Len(t, chain, len(levels))
	h, err := hierarchy.New(chain, []string{"a", "b", "c", "d", "e"}, rel)
	require.NoError(t, err)

	for level := 1; level < h.NumLevels(); level++ {
		p, err := h.Partition(level)
		require.NoError(t, err)
		require.True(t, p.IsPartition(), "level %d", level)
		got, ok := p.Assignment()
		require.True(t, ok)
		for v := range got {
			want := v
			for l := 0; l < level; l++ {
				want = levels[l][want]
			}
			assert.Equal(t, want, got[v], "level %d vertex %d", level, v)
		}
	}
}
