// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/config"
	"github.com/aujxn/recipe-analysis/cooccurrence"
	"github.com/aujxn/recipe-analysis/corpus"
)

var errNoCorpus = errors.New("no corpus: set --corpus-file or --driver and --dsn")

// loadRecipes reads the filtered corpus from the configured source.
func loadRecipes(ctx context.Context, cfg *config.Config, log *zap.Logger) ([]cooccurrence.Recipe, error) {
	filter := corpus.Filter{
		Tag:            cfg.Corpus.Tag,
		AllIngredients: cfg.Corpus.AllIngredients,
		AnyIngredients: cfg.Corpus.AnyIngredients,
	}

	var src corpus.Source
	switch {
	case cfg.Corpus.File != "":
		fs, err := corpus.LoadFile(cfg.Corpus.File)
		if err != nil {
			return nil, err
		}
		src = fs
	case cfg.Corpus.Driver != "":
		store, err := corpus.Open(cfg.Corpus.Driver, cfg.Corpus.DSN)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		src = store
	default:
		return nil, errNoCorpus
	}

	recipes, err := src.Recipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	log.Info("corpus loaded", zap.Int("recipes", len(recipes)), zap.Bool("filtered", !filter.IsZero()))

	return corpus.ToCooccurrence(recipes), nil
}
