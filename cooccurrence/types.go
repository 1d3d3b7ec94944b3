// SPDX-License-Identifier: MIT

package cooccurrence

// Recipe is one corpus entry: an external recipe id and its ingredient names.
type Recipe struct {
	ID          int64
	Ingredients []string
}

// Entry is the index record of one ingredient name.
type Entry struct {
	ID    int // zero-based IngredientId, assigned on first sight
	Count int // number of recipes containing the ingredient
}

// Pair is an unordered ingredient pair in canonical form (I < J).
type Pair struct {
	I, J int
}

// canonical returns the pair (min(a,b), max(a,b)).
func canonical(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{I: a, J: b}
}
