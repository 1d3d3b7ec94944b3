// SPDX-License-Identifier: MIT

package expanded

import "fmt"

// VertexKind tags the variant of an expanded-graph vertex.
type VertexKind uint8

const (
	// IngredientHub is shared by every occurrence of one ingredient.
	IngredientHub VertexKind = iota
	// RecipeHub is shared by every ingredient occurrence of one recipe.
	RecipeHub
	// Instance is one (ingredient, recipe) occurrence.
	Instance
	// TargetHub is the synthetic vertex biasing a target ingredient set.
	TargetHub
)

// String implements fmt.Stringer.
func (k VertexKind) String() string {
	switch k {
	case IngredientHub:
		return "IngredientHub"
	case RecipeHub:
		return "RecipeHub"
	case Instance:
		return "Instance"
	case TargetHub:
		return "TargetHub"
	default:
		return fmt.Sprintf("VertexKind(%d)", uint8(k))
	}
}

// Vertex is one entry of the vertex arena. Only the fields meaningful for
// Kind are set; the accessors below encode which ones.
type Vertex struct {
	Kind       VertexKind
	Ingredient int // IngredientHub, Instance
	Recipe     int // RecipeHub, Instance
}

// IngredientID returns the ingredient the vertex refers to.
// ok is false for RecipeHub and TargetHub.
func (v Vertex) IngredientID() (id int, ok bool) {
	switch v.Kind {
	case IngredientHub, Instance:
		return v.Ingredient, true
	default:
		return 0, false
	}
}

// RecipeID returns the recipe the vertex refers to.
// ok is false for IngredientHub and TargetHub.
func (v Vertex) RecipeID() (id int, ok bool) {
	switch v.Kind {
	case RecipeHub, Instance:
		return v.Recipe, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer.
func (v Vertex) String() string {
	switch v.Kind {
	case IngredientHub:
		return fmt.Sprintf("IngredientHub(%d)", v.Ingredient)
	case RecipeHub:
		return fmt.Sprintf("RecipeHub(%d)", v.Recipe)
	case Instance:
		return fmt.Sprintf("Instance(%d,%d)", v.Ingredient, v.Recipe)
	default:
		return v.Kind.String()
	}
}

// edgeKey is an undirected edge in canonical form (u < v).
type edgeKey struct {
	u, v int
}

// spokeWeight is the weight of every edge created by star expansion and by
// a single target-hub injection.
const spokeWeight = 1

// File-local method tags for error context.
const (
	methodBuildStars       = "BuildStars"
	methodConnectTargetHub = "ConnectTargetHub"
	methodVertex           = "Vertex"
)
