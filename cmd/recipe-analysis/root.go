// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/config"
)

// app carries what every subcommand needs once the root has loaded the
// configuration.
type app struct {
	v          *viper.Viper
	configPath string
	noColor    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "recipe-analysis",
		Short: "Ingredient co-occurrence and multilevel aggregate analysis",
		Long: `recipe-analysis indexes a recipe corpus, expands it into a hub graph,
partitions that graph with the external Louvain tools and reconstructs
ingredient aggregates at any level of the resulting hierarchy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				color.NoColor = true
			}
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			log, err := cfg.Log.Logger()
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./recipe-analysis.yaml)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-dev", false, "human-readable development logging")
	pf.String("driver", "", "database driver: sqlite or pgx")
	pf.String("dsn", "", "database DSN")
	pf.String("corpus-file", "", "YAML corpus file, instead of a database")
	pf.String("tag", "", "only recipes with this tag")
	pf.StringSlice("all", nil, "only recipes containing all of these ingredients")
	pf.StringSlice("any", nil, "only recipes containing any of these ingredients")
	pf.StringSlice("target", nil, "target ingredients: bias the expanded graph and filter aggregates")
	pf.Int("level", 1, "hierarchy level to reconstruct")
	pf.String("format", "text", "output format: text, yaml or json")
	pf.Int("workers", 1, "co-occurrence workers")
	pf.String("convert", "convert", "Louvain convert binary")
	pf.String("community", "community", "Louvain community binary")
	pf.String("work-dir", "", "base directory for run artifacts")
	pf.String("assignments", "", "replay a kept louvain_hierarchy instead of running Louvain")
	pf.String("metrics-textfile", "", "write Prometheus metrics to this file")

	for key, flag := range map[string]string{
		"log.level":              "log-level",
		"log.development":        "log-dev",
		"corpus.driver":          "driver",
		"corpus.dsn":             "dsn",
		"corpus.file":            "corpus-file",
		"corpus.tag":             "tag",
		"corpus.all_ingredients": "all",
		"corpus.any_ingredients": "any",
		"query.targets":          "target",
		"query.level":            "level",
		"query.format":           "format",
		"workers":                "workers",
		"louvain.convert":        "convert",
		"louvain.community":      "community",
		"louvain.work_dir":       "work-dir",
		"louvain.assignments":    "assignments",
		"metrics.textfile":       "metrics-textfile",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err) // flag names above are static
		}
	}

	root.AddCommand(
		newCooccurCmd(a),
		newExpandCmd(a),
		newHierarchyCmd(a),
		newLevelsCmd(a),
		newImportCmd(a),
		newVersionCmd(),
	)

	return root
}
