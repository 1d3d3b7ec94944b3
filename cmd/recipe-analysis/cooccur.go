// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/cooccurrence"
)

func newCooccurCmd(a *app) *cobra.Command {
	var out, labels, csr string

	cmd := &cobra.Command{
		Use:   "cooccur",
		Short: "Build the ingredient co-occurrence matrix",
		Long: `cooccur counts, for every pair of ingredients, the recipes containing both
and writes the counts as an "i j count" edge list (stdout by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := loadRecipes(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			rel, err := cooccurrence.BuildParallel(cmd.Context(), recipes, a.cfg.Workers)
			if err != nil {
				return err
			}
			a.log.Info("co-occurrence built",
				zap.Int("ingredients", rel.NumIngredients()), zap.Int("pairs", len(rel.Pairs())))

			if err := writeTo(out, cmd.OutOrStdout(), rel.WriteCoolist); err != nil {
				return err
			}
			if labels != "" {
				if err := writeTo(labels, nil, rel.WriteLabels); err != nil {
					return err
				}
			}
			if csr != "" {
				m := rel.Matrix()
				if err := writeTo(csr, nil, func(w io.Writer) error { return artifact.WriteCSR(w, m) }); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "edge list file (default stdout)")
	cmd.Flags().StringVar(&labels, "labels", "", "write ingredient names in id order to this file")
	cmd.Flags().StringVar(&csr, "csr", "", "write the symmetric matrix in CSR text form to this file")

	return cmd
}

// writeTo sends write to path, or to fallback when path is empty.
func writeTo(path string, fallback io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
