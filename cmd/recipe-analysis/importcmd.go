// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/corpus"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <corpus.yaml>",
		Short: "Load a YAML corpus into the database",
		Long: `import creates the schema if needed and upserts every recipe of a YAML
corpus file into the database selected by --driver and --dsn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Corpus.Driver == "" {
				return errNoCorpus
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			defer f.Close()
			recipes, err := corpus.ReadYAML(f)
			if err != nil {
				return err
			}

			store, err := corpus.Open(a.cfg.Corpus.Driver, a.cfg.Corpus.DSN)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			if err := store.Insert(cmd.Context(), recipes...); err != nil {
				return err
			}
			a.log.Info("corpus imported", zap.String("file", args[0]), zap.Int("recipes", len(recipes)))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d recipes\n", len(recipes))
			return nil
		},
	}
}
