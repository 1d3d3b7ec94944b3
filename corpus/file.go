// SPDX-License-Identifier: MIT

package corpus

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// file is the on-disk fixture layout.
type file struct {
	Recipes []Recipe `yaml:"recipes"`
}

// ReadYAML decodes a corpus document:
//
//	recipes:
//	  - id: 1
//	    title: Caprese
//	    tags: [italian]
//	    ingredients: [tomato, basil, mozzarella]
//
// Duplicate recipe ids and empty names are rejected with ErrMalformedFile.
func ReadYAML(r io.Reader) ([]Recipe, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadYAML: %w: %w", ErrMalformedFile, err)
	}

	seen := make(map[int64]struct{}, len(doc.Recipes))
	for _, rec := range doc.Recipes {
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("ReadYAML: recipe %d listed twice: %w", rec.ID, ErrMalformedFile)
		}
		seen[rec.ID] = struct{}{}
		if err := validate(rec); err != nil {
			return nil, fmt.Errorf("ReadYAML: %w: %w", ErrMalformedFile, err)
		}
	}

	return doc.Recipes, nil
}

// FileSource serves a corpus loaded from a YAML fixture.
type FileSource struct {
	recipes []Recipe
}

// LoadFile reads a YAML corpus from path.
func LoadFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q): %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	recipes, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q): %w", path, err)
	}
	return NewFileSource(recipes), nil
}

// NewFileSource serves recipes from memory.
func NewFileSource(recipes []Recipe) *FileSource {
	return &FileSource{recipes: slices.Clone(recipes)}
}

// Recipes implements Source.
func (s *FileSource) Recipes(ctx context.Context, f Filter) ([]Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FilterRecipes(s.recipes, f), nil
}

// FilterRecipes applies f in memory with the same ordering and shape as
// Store.Recipes.
func FilterRecipes(recipes []Recipe, f Filter) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !f.Match(r) {
			continue
		}
		out = append(out, Recipe{ID: r.ID, Title: r.Title, Ingredients: normalize(r.Ingredients)})
	}
	slices.SortFunc(out, func(a, b Recipe) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
