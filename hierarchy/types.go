// SPDX-License-Identifier: MIT

package hierarchy

// IngredientRecipes is one ingredient of an aggregate together with the
// recipes whose instance of that ingredient fell into the aggregate.
type IngredientRecipes struct {
	Name    string `json:"name" yaml:"name"`
	Recipes []int  `json:"recipes" yaml:"recipes"` // ascending recipe ids
}

// Count returns the number of contributing recipes.
func (ir IngredientRecipes) Count() int { return len(ir.Recipes) }

// Aggregate is one reconstructed group at a hierarchy level.
type Aggregate struct {
	ID          int                 `json:"id" yaml:"id"` // column of the composed partition
	Ingredients []IngredientRecipes `json:"ingredients" yaml:"ingredients"`
}

// Names returns the ingredient names of the aggregate in stored order.
func (a Aggregate) Names() []string {
	out := make([]string, len(a.Ingredients))
	for k, ir := range a.Ingredients {
		out[k] = ir.Name
	}
	return out
}

// Method tags for error context.
const (
	methodParse           = "Parse"
	methodFromAssignments = "FromAssignments"
	methodNew             = "New"
	methodPartition       = "Partition"
	methodAggregates      = "Aggregates"
	methodCoarseAdjacency = "CoarseAdjacency"
)
