// SPDX-License-Identifier: MIT
// Package: hierarchy
//
// query.go — aggregate reconstruction.

package hierarchy

import (
	"fmt"
	"slices"
	"sort"
)

// Aggregates reconstructs every aggregate at level as ingredient → recipes.
// Stage 1 (Compose): Partition(level).
// Stage 2 (Resolve): each vertex carrying both an ingredient and a recipe id
// (an Instance) adds its recipe to its ingredient in its aggregate; hubs are
// skipped.
// Stage 3 (Filter): with targets, keep only aggregates whose ingredient set
// contains every target name.
// Stage 4 (Order): ingredients by descending recipe count then name; recipe
// ids ascending and unique; aggregates by id.
//
// Without targets every aggregate is returned, including hub-only ones with
// no ingredients, so Aggregate.ID equals the slice position. A filter that
// matches nothing yields an empty slice, not an error.
//
// Complexity: O(V + Σ k log k) for V vertices.
func (h *Hierarchy) Aggregates(level int, targets []string) ([]Aggregate, error) {
	// Stage 1: compose
	p, err := h.Partition(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAggregates, err)
	}
	assign, ok := p.Assignment()
	if !ok {
		return nil, fmt.Errorf("%s(%d): composed matrix is not a partition: %w", methodAggregates, level, ErrChainMismatch)
	}

	// Stage 2: resolve vertices to (ingredient, recipe)
	groups := make([]map[int][]int, p.Cols()) // aggregate → ingredient id → recipes
	for v, agg := range assign {
		ing, okIng := h.relation.IngredientID(v)
		rec, okRec := h.relation.RecipeID(v)
		if !okIng || !okRec {
			continue
		}
		if groups[agg] == nil {
			groups[agg] = make(map[int][]int)
		}
		groups[agg][ing] = append(groups[agg][ing], rec)
	}

	// Stage 3 + 4: filter and order
	out := make([]Aggregate, 0, len(groups))
	for agg, byIng := range groups {
		if !h.containsAll(byIng, targets) {
			continue
		}
		out = append(out, Aggregate{ID: agg, Ingredients: h.ordered(byIng)})
	}

	return out, nil
}

// containsAll reports whether every target name has an entry in byIng.
func (h *Hierarchy) containsAll(byIng map[int][]int, targets []string) bool {
	if len(targets) == 0 {
		return true
	}
	present := make(map[string]struct{}, len(byIng))
	for ing := range byIng {
		present[h.names[ing]] = struct{}{}
	}
	for _, t := range targets {
		if _, ok := present[t]; !ok {
			return false
		}
	}
	return true
}

// ordered converts one aggregate's map into the Stage 4 order.
func (h *Hierarchy) ordered(byIng map[int][]int) []IngredientRecipes {
	out := make([]IngredientRecipes, 0, len(byIng))
	for ing, recipes := range byIng {
		rs := append([]int(nil), recipes...)
		slices.Sort(rs)
		rs = slices.Compact(rs) // a recipe listing an id twice counts once
		out = append(out, IngredientRecipes{Name: h.names[ing], Recipes: rs})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count() != out[b].Count() {
			return out[a].Count() > out[b].Count()
		}
		return out[a].Name < out[b].Name
	})

	return out
}
