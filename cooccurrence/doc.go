// SPDX-License-Identifier: MIT

// Package cooccurrence turns (recipe, ingredient-name list) pairs into an
// ingredient index and a symmetric ingredient×ingredient co-occurrence count.
//
// What:
//
//   - Build / BuildParallel: index ingredients and count, for every unordered
//     pair of distinct ingredients, the number of recipes containing both.
//   - Relation: the resulting name→(id,count) map, id→name list, canonical
//     pair counts, the symmetric sparse matrix, and per-recipe id lists that
//     feed the expanded builder.
//
// Determinism:
//
//	Each recipe's ingredient list is sorted and de-duplicated before ids are
//	assigned, and ids are handed out in first-sight order over the recipes
//	in input order. The same corpus therefore always yields the same ids.
//
// Counting:
//
//	A cell counts recipes, not occurrences: an ingredient listed twice in one
//	recipe contributes once. The diagonal is never stored.
package cooccurrence
