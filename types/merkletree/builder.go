/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"math/bits"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MaxDepth bounds the tree height so that leaf indices fit an int.
const MaxDepth = 62

// parallelThreshold is the smallest amount of work split across workers.
const parallelThreshold = 256

// DepthFor returns ceil(log2(n)), the depth of a tree holding n entries.
func DepthFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func normalizeWorkers(workers int) int {
	if workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// parallelFor calls fn for every index in [0, n), splitting the range into
// one contiguous chunk per worker. fn must only write to its own index.
func parallelFor(n, workers int, fn func(i int) error) error {
	workers = normalizeWorkers(workers)
	if n < parallelThreshold || workers == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// BuildLeaves maps every entry to its leaf node, preserving order. The
// leaf of the zero entry is computed once and shared by all padding.
func BuildLeaves(entries []Entry, workers int) ([]Node, error) {
	zeroLeaf := ZeroEntry().ComputeLeaf()

	leaves := make([]Node, len(entries))
	err := parallelFor(len(entries), workers, func(i int) error {
		if entries[i].IsPadding() {
			leaves[i] = zeroLeaf
			return nil
		}
		leaves[i] = entries[i].ComputeLeaf()
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to build leaves")
	}

	return leaves, nil
}

// BuildTree folds the leaf layer into the full layer matrix. layers[0] is
// a copy of leaves and layers[depth] holds the root alone. Levels are
// built one after another; the pairs of a level are hashed in parallel.
func BuildTree(leaves []Node, depth, workers int) (Node, [][]Node, error) {
	if depth < 0 || depth > MaxDepth || len(leaves) != 1<<uint(depth) {
		return Node{}, nil, errors.Wrapf(ErrLeafCountMismatch,
			"got %d leaves for depth %d", len(leaves), depth)
	}

	layers := make([][]Node, 0, depth+1)
	layers = append(layers, append([]Node(nil), leaves...))

	for level := 1; level <= depth; level++ {
		parents, err := buildMiddleLayer(layers[level-1], workers)
		if err != nil {
			return Node{}, nil, errors.Wrapf(err, "unable to build level %d", level)
		}
		layers = append(layers, parents)
	}

	return layers[depth][0], layers, nil
}

func buildMiddleLayer(children []Node, workers int) ([]Node, error) {
	parents := make([]Node, len(children)/2)
	err := parallelFor(len(parents), workers, func(i int) error {
		parents[i] = MiddleNode(children[2*i], children[2*i+1])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parents, nil
}
