// Package recipeanalysis finds ingredient aggregates in a recipe corpus by
// multilevel community detection on an expanded ingredient graph.
//
// What is recipe-analysis?
//
//	A pipeline and a set of small packages that:
//		• index a corpus into ingredient ids and co-occurrence counts
//		• expand every (ingredient, recipe) occurrence into a hub graph,
//		  optionally biased toward a set of target ingredients
//		• hand the graph to the external Louvain tools in one batch call
//		• compose the returned interpolation matrices and reconstruct the
//		  ingredient aggregates at any level
//
// Under the hood the work is split across these packages:
//
//	artifact/     — text formats: edge lists, labels, CSR and assignment streams
//	cmd/          — the recipe-analysis command line
//	config/       — viper-backed configuration and the zap logger
//	cooccurrence/ — ingredient indexing and pair counting
//	corpus/       — recipe sources: SQLite/PostgreSQL stores and YAML files
//	expanded/     — star expansion, target hub and connected components
//	hierarchy/    — stream parsing, partition composition and aggregates
//	matrix/       — immutable CSR integer matrices with Mul and Transpose
//	partition/    — the Louvain runner and replay of kept streams
//	pipeline/     — one end-to-end run with artifacts and metrics
//
// Quick ASCII example, one instance per (ingredient, recipe) occurrence,
// each with one spoke to its ingredient hub and one to its recipe hub:
//
//	tomato ── tomato@R0 ── R0
//	basil  ── basil@R0  ── R0
//
//	go install github.com/aujxn/recipe-analysis/cmd/recipe-analysis@latest
package recipeanalysis
