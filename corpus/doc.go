// SPDX-License-Identifier: MIT

// Package corpus supplies recipes to the analysis. It adapts the storage
// layer that sits outside the core: a SQL store (SQLite through
// modernc.org/sqlite or PostgreSQL through pgx) and YAML fixture files.
//
// Both sources implement Source and honour the same Filter:
//
//   - Tag            recipe carries the tag.
//   - AllIngredients recipe contains every listed ingredient.
//   - AnyIngredients recipe contains at least one listed ingredient.
//
// Set filters intersect. Results are ordered by recipe id, with sorted,
// de-duplicated ingredient names. Tags are used for filtering only and are
// not returned.
package corpus
