// SPDX-License-Identifier: MIT

// Package expanded builds the expanded ingredient relation: a sparse weighted
// graph in which every (ingredient, recipe) occurrence is its own vertex, tied
// to a shared ingredient hub and a shared recipe hub. The graph is the input
// of the external community-detection pass.
//
// Vertex layout (indices never change once assigned):
//
//	0 … numIngredients-1                 IngredientHub(id)   (index == id)
//	numIngredients + r                   RecipeHub(r)        for each recipe r
//	then, per recipe r in input order:   Instance(i, r) for each i in r
//	optionally, last:                    TargetHub
//
// Why stars:
//
//	A clique per recipe costs O(k²) edges for a recipe of k ingredients; a star
//	around a recipe hub costs O(k) while keeping every pair of ingredients of
//	that recipe two hops apart, and every pair of occurrences of the same
//	ingredient two hops apart through the ingredient hub.
//
// Target bias:
//
//	ConnectTargetHub appends a single synthetic TargetHub vertex and connects it
//	to every Instance whose ingredient is in the target set. Edge insertion
//	accumulates weight, so repeated injection strengthens existing spokes
//	instead of duplicating them.
//
// Components:
//
//	Components labels vertices by connected component. Louvain never merges
//	across components, so the count bounds the coarsest level from below.
//
// Errors:
//
//	ErrInvalidIngredientID - an ingredient id outside [0, numIngredients).
//	ErrVertexOutOfRange    - a vertex index outside [0, NumVertices()).
//	ErrBadIngredientCount  - a negative numIngredients.
package expanded
