// SPDX-License-Identifier: MIT

package corpus

import (
	"context"
	"slices"

	"github.com/aujxn/recipe-analysis/cooccurrence"
)

// Recipe is one stored recipe.
type Recipe struct {
	ID          int64    `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Ingredients []string `yaml:"ingredients" json:"ingredients"`
}

// Filter selects recipes; the zero Filter selects everything.
type Filter struct {
	Tag            string
	AllIngredients []string
	AnyIngredients []string
}

// IsZero reports whether f selects every recipe.
func (f Filter) IsZero() bool {
	return f.Tag == "" && len(f.AllIngredients) == 0 && len(f.AnyIngredients) == 0
}

// Match reports whether r passes f.
func (f Filter) Match(r Recipe) bool {
	if f.Tag != "" && !slices.Contains(r.Tags, f.Tag) {
		return false
	}
	for _, name := range f.AllIngredients {
		if !slices.Contains(r.Ingredients, name) {
			return false
		}
	}
	if len(f.AnyIngredients) > 0 && !slices.ContainsFunc(f.AnyIngredients, func(name string) bool {
		return slices.Contains(r.Ingredients, name)
	}) {
		return false
	}
	return true
}

// Source yields the recipes selected by a Filter.
type Source interface {
	Recipes(ctx context.Context, f Filter) ([]Recipe, error)
}

// ToCooccurrence converts recipes into co-occurrence builder input.
func ToCooccurrence(recipes []Recipe) []cooccurrence.Recipe {
	out := make([]cooccurrence.Recipe, len(recipes))
	for k, r := range recipes {
		out[k] = cooccurrence.Recipe{ID: r.ID, Ingredients: append([]string(nil), r.Ingredients...)}
	}
	return out
}

// normalize returns a sorted, de-duplicated copy of names.
func normalize(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}
