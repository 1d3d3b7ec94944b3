// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/aujxn/recipe-analysis/hierarchy"
	"github.com/aujxn/recipe-analysis/pipeline"
)

// aggregateView is an aggregate with corpus recipe ids in place of the
// positional ones the hierarchy works with.
type aggregateView struct {
	ID          int              `json:"id" yaml:"id"`
	Ingredients []ingredientView `json:"ingredients" yaml:"ingredients"`
}

type ingredientView struct {
	Name    string  `json:"name" yaml:"name"`
	Count   int     `json:"count" yaml:"count"`
	Recipes []int64 `json:"recipes" yaml:"recipes"`
}

func toViews(aggs []hierarchy.Aggregate, recipeIDs []int64) []aggregateView {
	out := make([]aggregateView, len(aggs))
	for k, agg := range aggs {
		view := aggregateView{ID: agg.ID, Ingredients: make([]ingredientView, len(agg.Ingredients))}
		for j, ir := range agg.Ingredients {
			ids := make([]int64, len(ir.Recipes))
			for n, pos := range ir.Recipes {
				ids[n] = recipeIDs[pos]
			}
			view.Ingredients[j] = ingredientView{Name: ir.Name, Count: ir.Count(), Recipes: ids}
		}
		out[k] = view
	}
	return out
}

func renderAggregates(w io.Writer, format string, aggs []hierarchy.Aggregate, recipeIDs []int64) error {
	views := toViews(aggs, recipeIDs)
	switch format {
	case "json":
		return writeJSON(w, views)
	case "yaml":
		return writeYAML(w, views)
	}

	header := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)
	if len(views) == 0 {
		gray.Fprintln(w, "no aggregates")
		return nil
	}
	for _, v := range views {
		header.Fprintf(w, "aggregate %d", v.ID)
		gray.Fprintf(w, " (%d ingredients)\n", len(v.Ingredients))
		for _, ing := range v.Ingredients {
			fmt.Fprintf(w, "  %-24s %4d  ", ing.Name, ing.Count)
			gray.Fprintln(w, joinIDs(ing.Recipes))
		}
	}
	return nil
}

// levelsView summarises a run's hierarchy.
type levelsView struct {
	RunID   string `json:"run_id" yaml:"run_id"`
	WorkDir string `json:"work_dir" yaml:"work_dir"`
	Levels  []int  `json:"levels" yaml:"levels"`
}

func renderLevels(w io.Writer, format string, res *pipeline.Result) error {
	view := levelsView{RunID: res.RunID, WorkDir: res.WorkDir, Levels: res.Hierarchy.LevelSizes()}
	switch format {
	case "json":
		return writeJSON(w, view)
	case "yaml":
		return writeYAML(w, view)
	}

	bold := color.New(color.Bold, color.FgCyan)
	for level, size := range view.Levels {
		bold.Fprintf(w, "level %d", level)
		fmt.Fprintf(w, ": %d\n", size)
	}
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for k, id := range ids {
		parts[k] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
