// SPDX-License-Identifier: MIT
// Package: partition
//
// louvain.go — batch call into the external Louvain binaries.
//
// Contract:
//   - One synchronous attempt: write edge list, convert, run, read.
//   - Artifacts in the work dir: expanded_coolist, graph.bin, louvain_hierarchy.
//   - Cancelling ctx kills the running tool; the context error is returned.

package partition

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/hierarchy"
	"github.com/aujxn/recipe-analysis/matrix"
)

// waitDelay bounds how long Run waits for output pipes once the tool exits
// or is killed.
const waitDelay = 2 * time.Second

// Louvain runs the reference Louvain `convert` and `community` binaries.
type Louvain struct {
	convert   string
	community string
	workDir   string
	log       *zap.Logger
}

// NewLouvain returns a runner using `convert` and `community` from PATH
// unless overridden by options.
func NewLouvain(opts ...Option) *Louvain {
	l := &Louvain{
		convert:   defaultConvert,
		community: defaultCommunity,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Partition implements Partitioner.
// Stage 1 (Validate): endpoints in [0, n).
// Stage 2 (Write): edge list into the work dir.
// Stage 3 (Run): convert, then community with every level printed.
// Stage 4 (Read): keep the stream, parse it, pad to n rows.
//
// An empty edge list gives an empty chain without running the tool.
func (l *Louvain) Partition(ctx context.Context, edges []artifact.Edge, n int) ([]*matrix.Sparse, error) {
	// Stage 1: validate
	span, err := validateEdges(methodLouvain, edges, n)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		l.log.Info("empty edge list, skipping community detection", zap.Int("vertices", n))
		return nil, nil
	}

	dir, cleanup, err := l.prepareDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	// Stage 2: edge list
	coolist := filepath.Join(dir, coolistFile)
	if err := writeFile(coolist, func(f *os.File) error { return artifact.WriteEdges(f, edges) }); err != nil {
		return nil, err
	}

	// Stage 3: external tool
	graph := filepath.Join(dir, graphFile)
	if _, err := l.run(ctx, l.convert, "-i", coolist, "-o", graph); err != nil {
		return nil, err
	}
	stream, err := l.run(ctx, l.community, graph, "-l", "-1")
	if err != nil {
		return nil, err
	}

	// Stage 4: assignment stream
	if err := os.WriteFile(filepath.Join(dir, hierarchyFile), stream, 0o644); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodLouvain, ErrIO, err)
	}
	chain, err := hierarchy.Parse(bytes.NewReader(stream), span)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLouvain, err)
	}
	if span < n {
		l.log.Debug("padding isolated trailing vertices", zap.Int("span", span), zap.Int("vertices", n))
	}
	chain, err = Pad(chain, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLouvain, err)
	}
	l.log.Info("community detection finished", zap.Int("levels", len(chain)), zap.String("dir", dir))

	return chain, nil
}

// prepareDir returns the work dir and a cleanup func that removes it only
// when it was created as a temporary directory.
func (l *Louvain) prepareDir() (string, func(), error) {
	if l.workDir != "" {
		if err := os.MkdirAll(l.workDir, 0o755); err != nil {
			return "", nil, fmt.Errorf("%s: %w: %w", methodLouvain, ErrIO, err)
		}
		return l.workDir, func() {}, nil
	}
	dir, err := os.MkdirTemp("", "louvain-*")
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w: %w", methodLouvain, ErrIO, err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			l.log.Warn("removing work dir", zap.String("dir", dir), zap.Error(err))
		}
	}, nil
}

// run executes one tool invocation and returns its stdout.
func (l *Louvain) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay // children may hold the output pipes after a kill

	start := time.Now()
	l.log.Debug("running tool", zap.String("cmd", name), zap.Strings("args", args))
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodLouvain, filepath.Base(name), ctxErr)
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s: %s exited %d: %s: %w", methodLouvain, filepath.Base(name), exitErr.ExitCode(), msg, ErrTool)
		}
		return nil, fmt.Errorf("%s: %s: %w: %w", methodLouvain, filepath.Base(name), ErrTool, err)
	}
	l.log.Debug("tool finished", zap.String("cmd", name), zap.Duration("took", time.Since(start)),
		zap.Int("stdout_bytes", stdout.Len()))

	return stdout.Bytes(), nil
}

// writeFile creates path and hands it to fill, mapping failures to ErrIO.
func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", methodLouvain, ErrIO, err)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", methodLouvain, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w: %w", methodLouvain, ErrIO, err)
	}
	return nil
}
