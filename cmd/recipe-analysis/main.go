// SPDX-License-Identifier: MIT

// Command recipe-analysis builds ingredient co-occurrence and expanded
// relation graphs from a recipe corpus, runs the external Louvain pass and
// prints ingredient aggregates at a chosen hierarchy level.
package main

import (
	"fmt"
	"os"
)

// Version information, set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
