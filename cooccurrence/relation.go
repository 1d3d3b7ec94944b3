// SPDX-License-Identifier: MIT

package cooccurrence

import (
	"fmt"
	"io"
	"sort"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/matrix"
)

// Relation is the immutable result of Build / BuildParallel.
type Relation struct {
	ingredientMap     map[string]Entry // name → (id, recipe count)
	ingredients       []string         // id → name
	pairs             map[Pair]int     // canonical pair → co-occurrence count
	recipeIDs         []int64          // external ids, input order
	recipeIngredients [][]int          // per recipe: sorted-by-name unique ids
}

// Build indexes recipes and counts co-occurring ingredient pairs.
// Stage 1 (Index): sort+unique each recipe, assign ids on first sight.
// Stage 2 (Count): increment every canonical pair within each recipe.
// Complexity: O(Σ k_r log k_r + Σ k_r²) for recipe sizes k_r.
//
// An empty corpus yields an empty Relation, not an error.
func Build(recipes []Recipe) *Relation {
	rel := index(recipes)
	rel.pairs = countPairs(rel.recipeIngredients)

	return rel
}

// index performs Stage 1 for Build and BuildParallel.
func index(recipes []Recipe) *Relation {
	rel := &Relation{
		ingredientMap:     make(map[string]Entry),
		recipeIDs:         make([]int64, 0, len(recipes)),
		recipeIngredients: make([][]int, 0, len(recipes)),
	}
	for _, r := range recipes {
		names := uniqueSorted(r.Ingredients)
		ids := make([]int, len(names))
		for k, name := range names {
			e, ok := rel.ingredientMap[name]
			if !ok {
				e = Entry{ID: len(rel.ingredients)}
				rel.ingredients = append(rel.ingredients, name)
			}
			e.Count++
			rel.ingredientMap[name] = e
			ids[k] = e.ID
		}
		rel.recipeIDs = append(rel.recipeIDs, r.ID)
		rel.recipeIngredients = append(rel.recipeIngredients, ids)
	}

	return rel
}

// countPairs accumulates canonical pair counts over the given recipes.
func countPairs(recipes [][]int) map[Pair]int {
	pairs := make(map[Pair]int)
	for _, ids := range recipes {
		for a := 0; a < len(ids); a++ {
			for b := a + 1; b < len(ids); b++ {
				pairs[canonical(ids[a], ids[b])]++
			}
		}
	}

	return pairs
}

// uniqueSorted returns a sorted copy of names without duplicates.
func uniqueSorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	w := 0
	for k, n := range out {
		if k > 0 && n == out[w-1] {
			continue
		}
		out[w] = n
		w++
	}

	return out[:w]
}

// IngredientMap returns a copy of the name → Entry index.
func (r *Relation) IngredientMap() map[string]Entry {
	out := make(map[string]Entry, len(r.ingredientMap))
	for k, v := range r.ingredientMap {
		out[k] = v
	}
	return out
}

// Ingredients returns the id → name table.
func (r *Relation) Ingredients() []string {
	return append([]string(nil), r.ingredients...)
}

// NumIngredients returns the number of distinct ingredients.
func (r *Relation) NumIngredients() int { return len(r.ingredients) }

// RecipeCount returns the number of recipes indexed, including empty ones.
func (r *Relation) RecipeCount() int { return len(r.recipeIDs) }

// RecipeIDs returns the external recipe ids in input order; position k is
// the RecipeId k used by the expanded relation.
func (r *Relation) RecipeIDs() []int64 {
	return append([]int64(nil), r.recipeIDs...)
}

// RecipeIngredients returns, per recipe, its de-duplicated ingredient ids.
// This is the input expected by expanded.BuildStars.
func (r *Relation) RecipeIngredients() [][]int {
	out := make([][]int, len(r.recipeIngredients))
	for k, ids := range r.recipeIngredients {
		out[k] = make([]int, len(ids))
		copy(out[k], ids)
	}
	return out
}

// ID looks up the id of one ingredient name.
func (r *Relation) ID(name string) (int, error) {
	e, ok := r.ingredientMap[name]
	if !ok {
		return 0, fmt.Errorf("ID(%q): %w", name, ErrUnknownIngredient)
	}
	return e.ID, nil
}

// IDs looks up ids for names, failing on the first unknown name.
func (r *Relation) IDs(names []string) ([]int, error) {
	out := make([]int, 0, len(names))
	for _, n := range names {
		id, err := r.ID(n)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Count returns the number of recipes containing both i and j.
// Count(i, i) is always 0.
func (r *Relation) Count(i, j int) int {
	if i == j {
		return 0
	}
	return r.pairs[canonical(i, j)]
}

// Pairs returns every non-zero pair count as an edge with I < J, ordered by
// (I, J).
func (r *Relation) Pairs() []artifact.Edge {
	out := make([]artifact.Edge, 0, len(r.pairs))
	for p, c := range r.pairs {
		out = append(out, artifact.Edge{I: p.I, J: p.J, Weight: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})

	return out
}

// Matrix materialises the symmetric n×n co-occurrence matrix (both halves,
// zero diagonal).
// Complexity: O(p log p) for p stored pairs.
func (r *Relation) Matrix() *matrix.Sparse {
	n := len(r.ingredients)
	elems := make([]matrix.Element, 0, 2*len(r.pairs))
	for p, c := range r.pairs {
		elems = append(elems,
			matrix.Element{Row: p.I, Col: p.J, Value: c},
			matrix.Element{Row: p.J, Col: p.I, Value: c},
		)
	}
	// ids are always < n, so New cannot fail here
	m, err := matrix.New(n, n, elems)
	if err != nil {
		panic(fmt.Sprintf("cooccurrence: Matrix: %v", err))
	}

	return m
}

// WriteCoolist writes the canonical pair counts as an edge list.
func (r *Relation) WriteCoolist(w io.Writer) error {
	return artifact.WriteEdges(w, r.Pairs())
}

// WriteLabels writes the ingredient names in id order.
func (r *Relation) WriteLabels(w io.Writer) error {
	return artifact.WriteLabels(w, r.ingredients)
}
