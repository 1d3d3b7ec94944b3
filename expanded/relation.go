// SPDX-License-Identifier: MIT
// Package: expanded
//
// relation.go — the vertex arena, the canonical edge map, and star expansion.
//
// Contract:
//   - Vertex indices are assigned once, monotonically, and never reassigned.
//   - IngredientHub(i) lives at index i; RecipeHub(r) at numIngredients + r.
//   - Every stored edge key satisfies u < v; self-edges are never stored.
//   - Edge insertion accumulates weight on an existing key.
//
// Determinism:
//   - Vertex order follows recipe input order and ingredient order within a
//     recipe; Edges() is sorted by (u, v), so serialisation is reproducible.

package expanded

import (
	"fmt"
	"io"
	"sort"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/matrix"
)

// Relation is the expanded ingredient relation. It is read-only after
// BuildStars apart from ConnectTargetHub, which only appends one vertex and
// adds or raises edges.
type Relation struct {
	numIngredients int
	numRecipes     int
	vertices       []Vertex        // arena, indexed by vertex id
	edges          map[edgeKey]int // canonical (u<v) → weight
	targetHub      int             // index of the TargetHub vertex, -1 if absent
}

// BuildStars performs star expansion over recipes, each a list of ingredient
// ids in [0, numIngredients).
// Stage 1 (Validate): numIngredients ≥ 0 and every id in range, before any
// vertex is created.
// Stage 2 (Hubs): IngredientHub(i) for i in 0..numIngredients.
// Stage 3 (Recipe hubs): RecipeHub(r) at numIngredients + r.
// Stage 4 (Stars): per recipe, per ingredient one Instance with spokes to its
// ingredient hub and recipe hub (weight 1 each).
// Stage 5 (Options): optional target-hub injection (WithTargetHub).
//
// An empty recipe contributes only its RecipeHub.
//
// Complexity: O(numIngredients + R + K) vertices and O(2K) edges for R recipes
// holding K ingredient occurrences in total.
func BuildStars(numIngredients int, recipes [][]int, opts ...BuildOption) (*Relation, error) {
	// Stage 1: validate everything up front to avoid partial work
	if numIngredients < 0 {
		return nil, fmt.Errorf("%s: numIngredients=%d: %w", methodBuildStars, numIngredients, ErrBadIngredientCount)
	}
	total := 0
	for r, ids := range recipes {
		for _, id := range ids {
			if id < 0 || id >= numIngredients {
				return nil, fmt.Errorf("%s: recipe %d: id %d not in [0,%d): %w",
					methodBuildStars, r, id, numIngredients, ErrInvalidIngredientID)
			}
		}
		total += len(ids)
	}
	cfg := newBuildConfig(opts...)

	rel := &Relation{
		numIngredients: numIngredients,
		numRecipes:     len(recipes),
		vertices:       make([]Vertex, 0, numIngredients+len(recipes)+total+1),
		edges:          make(map[edgeKey]int, 2*total),
		targetHub:      -1,
	}

	// Stage 2: ingredient hubs occupy [0, numIngredients)
	for id := 0; id < numIngredients; id++ {
		rel.vertices = append(rel.vertices, Vertex{Kind: IngredientHub, Ingredient: id})
	}

	// Stage 3: recipe hubs occupy [numIngredients, numIngredients+R)
	for r := range recipes {
		rel.push(Vertex{Kind: RecipeHub, Recipe: r})
	}

	// Stage 4: instances follow, recipe by recipe
	for r, ids := range recipes {
		recipeHub := numIngredients + r
		for _, id := range ids {
			inst := rel.push(Vertex{Kind: Instance, Ingredient: id, Recipe: r})
			rel.addEdge(id, inst, spokeWeight)
			rel.addEdge(recipeHub, inst, spokeWeight)
		}
	}

	// Stage 5: optional bias toward a target set
	if len(cfg.targets) > 0 {
		if _, err := rel.ConnectTargetHub(cfg.targets); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildStars, err)
		}
	}

	return rel, nil
}

// push appends v to the arena and returns its index.
func (r *Relation) push(v Vertex) int {
	r.vertices = append(r.vertices, v)
	return len(r.vertices) - 1
}

// addEdge adds w to the canonical edge {a, b}. Self-edges are ignored.
func (r *Relation) addEdge(a, b, w int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	r.edges[edgeKey{u: a, v: b}] += w
}

// NumVertices returns the size of the vertex arena.
func (r *Relation) NumVertices() int { return len(r.vertices) }

// NumEdges returns the number of distinct undirected edges.
func (r *Relation) NumEdges() int { return len(r.edges) }

// NumIngredients returns the number of ingredient hubs.
func (r *Relation) NumIngredients() int { return r.numIngredients }

// NumRecipes returns the number of recipe hubs.
func (r *Relation) NumRecipes() int { return r.numRecipes }

// TargetHub returns the index of the TargetHub vertex, if one was created.
func (r *Relation) TargetHub() (int, bool) {
	return r.targetHub, r.targetHub >= 0
}

// Vertex returns the arena entry at index v.
func (r *Relation) Vertex(v int) (Vertex, error) {
	if v < 0 || v >= len(r.vertices) {
		return Vertex{}, fmt.Errorf("%s(%d): %w", methodVertex, v, ErrVertexOutOfRange)
	}
	return r.vertices[v], nil
}

// IngredientID returns the ingredient id carried by vertex v. ok is false for
// recipe and target hubs and for indices outside the arena.
func (r *Relation) IngredientID(v int) (int, bool) {
	if v < 0 || v >= len(r.vertices) {
		return 0, false
	}
	return r.vertices[v].IngredientID()
}

// RecipeID returns the recipe id carried by vertex v. ok is false for
// ingredient and target hubs and for indices outside the arena.
func (r *Relation) RecipeID(v int) (int, bool) {
	if v < 0 || v >= len(r.vertices) {
		return 0, false
	}
	return r.vertices[v].RecipeID()
}

// Weight returns the weight of edge {i, j}, 0 if absent.
func (r *Relation) Weight(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return r.edges[edgeKey{u: i, v: j}]
}

// Edges returns every edge as (I < J, Weight), sorted by (I, J).
// Complexity: O(E log E).
func (r *Relation) Edges() []artifact.Edge {
	out := make([]artifact.Edge, 0, len(r.edges))
	for k, w := range r.edges {
		out = append(out, artifact.Edge{I: k.u, J: k.v, Weight: w})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})

	return out
}

// AdjacencyMatrix materialises the symmetric NumVertices()² adjacency matrix,
// emitting (i,j) and (j,i) with the stored weight for every edge.
func (r *Relation) AdjacencyMatrix() *matrix.Sparse {
	n := len(r.vertices)
	elems := make([]matrix.Element, 0, 2*len(r.edges))
	for k, w := range r.edges {
		elems = append(elems,
			matrix.Element{Row: k.u, Col: k.v, Value: w},
			matrix.Element{Row: k.v, Col: k.u, Value: w},
		)
	}
	// every endpoint indexes the arena, so New cannot fail
	m, err := matrix.New(n, n, elems)
	if err != nil {
		panic(fmt.Sprintf("expanded: AdjacencyMatrix: %v", err))
	}

	return m
}

// WriteCoolist writes the edge list in canonical order.
func (r *Relation) WriteCoolist(w io.Writer) error {
	return artifact.WriteEdges(w, r.Edges())
}
