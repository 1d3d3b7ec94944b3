// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aujxn/recipe-analysis/cooccurrence"
	"github.com/aujxn/recipe-analysis/expanded"
)

func newExpandCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Build the expanded hub graph",
		Long: `expand turns every (ingredient, recipe) occurrence into a vertex tied to an
ingredient hub and a recipe hub, optionally adds a target hub for --target
ingredients, and writes the edge list (stdout by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := loadRecipes(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			co, err := cooccurrence.BuildParallel(cmd.Context(), recipes, a.cfg.Workers)
			if err != nil {
				return err
			}
			targets, err := co.IDs(a.cfg.Query.Targets)
			if err != nil {
				return err
			}
			var opts []expanded.BuildOption
			if len(targets) > 0 {
				opts = append(opts, expanded.WithTargetHub(targets...))
			}
			rel, err := expanded.BuildStars(co.NumIngredients(), co.RecipeIngredients(), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "vertices: %d edges: %d\n", rel.NumVertices(), rel.NumEdges())

			return writeTo(out, cmd.OutOrStdout(), rel.WriteCoolist)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "edge list file (default stdout)")

	return cmd
}
