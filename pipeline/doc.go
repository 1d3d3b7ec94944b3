// SPDX-License-Identifier: MIT

// Package pipeline runs one end-to-end analysis: co-occurrence indexing,
// star expansion (optionally biased toward target ingredients), the external
// partitioning batch call, and hierarchy construction.
//
// Every run gets a UUID and a work directory <base>/<run id> holding the
// exchanged text artifacts:
//
//	ingredient_labels.txt   ingredient names in id order
//	cooccurrence_coolist    ingredient pair counts
//	expanded_coolist        expanded relation edge list (partitioner input)
//	louvain_hierarchy       assignment stream, when the default runner is used
//
// Stage timings and graph sizes are recorded in a Metrics registry that can
// be exported in the Prometheus textfile format.
package pipeline
