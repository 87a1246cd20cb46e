/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = NewEntry(fmt.Sprintf("user_%04d", i))
	}
	return entries
}

func TestDepthFor(t *testing.T) {
	tests := []struct {
		n     int
		depth int
	}{
		{n: 0, depth: 0},
		{n: 1, depth: 0},
		{n: 2, depth: 1},
		{n: 3, depth: 2},
		{n: 4, depth: 2},
		{n: 5, depth: 3},
		{n: 8, depth: 3},
		{n: 9, depth: 4},
		{n: 1024, depth: 10},
		{n: 1025, depth: 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.depth, DepthFor(tt.n), "n = %d", tt.n)
	}
}

func TestBuildLeaves(t *testing.T) {
	entries := append(makeEntries(3), ZeroEntry(), ZeroEntry())
	leaves, err := BuildLeaves(entries, 4)
	require.NoError(t, err)

	require.Len(t, leaves, len(entries))
	for i := 0; i < 3; i++ {
		assert.True(t, entries[i].ComputeLeaf().Equal(leaves[i]), "leaf %d", i)
	}

	zeroLeaf := ZeroEntry().ComputeLeaf()
	assert.True(t, zeroLeaf.Equal(leaves[3]))
	assert.True(t, zeroLeaf.Equal(leaves[4]))
}

func TestBuildLeavesParallelMatchesSequential(t *testing.T) {
	entries := makeEntries(3 * parallelThreshold)

	sequential, err := BuildLeaves(entries, 1)
	require.NoError(t, err)
	parallel, err := BuildLeaves(entries, 7)
	require.NoError(t, err)

	require.Len(t, parallel, len(sequential))
	for i := range sequential {
		assert.True(t, sequential[i].Equal(parallel[i]), "leaf %d", i)
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{0, 1, parallelThreshold - 1, 5 * parallelThreshold} {
		for _, workers := range []int{0, 1, 3} {
			visits := make([]int, n)
			err := parallelFor(n, workers, func(i int) error {
				visits[i]++
				return nil
			})
			require.NoError(t, err)
			for i, v := range visits {
				require.Equal(t, 1, v, "n = %d, workers = %d, index %d", n, workers, i)
			}
		}
	}
}

func TestParallelForReturnsWorkerError(t *testing.T) {
	failure := errors.New("worker failed")

	for _, workers := range []int{1, 4} {
		err := parallelFor(4*parallelThreshold, workers, func(i int) error {
			if i == 3*parallelThreshold {
				return failure
			}
			return nil
		})
		assert.Equal(t, failure, err, "workers = %d", workers)
	}
}

func TestBuildTree(t *testing.T) {
	leaves, err := BuildLeaves(makeEntries(4), 0)
	require.NoError(t, err)

	root, layers, err := BuildTree(leaves, 2, 0)
	require.NoError(t, err)
	require.Len(t, layers, 3)
	assert.Len(t, layers[0], 4)
	assert.Len(t, layers[1], 2)
	assert.Len(t, layers[2], 1)

	n01 := MiddleNode(leaves[0], leaves[1])
	n23 := MiddleNode(leaves[2], leaves[3])
	assert.True(t, n01.Equal(layers[1][0]))
	assert.True(t, n23.Equal(layers[1][1]))
	assert.True(t, MiddleNode(n01, n23).Equal(root))
	assert.True(t, root.Equal(layers[2][0]))

	// the leaf layer is a copy
	leaves[0] = EmptyNode()
	assert.False(t, layers[0][0].Equal(leaves[0]))
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	leaves, err := BuildLeaves(makeEntries(1), 0)
	require.NoError(t, err)

	root, layers, err := BuildTree(leaves, 0, 0)
	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.True(t, leaves[0].Equal(root))
}

func TestBuildTreeLeafCountMismatch(t *testing.T) {
	leaves, err := BuildLeaves(makeEntries(3), 0)
	require.NoError(t, err)

	for _, depth := range []int{-1, 1, 2, MaxDepth + 1} {
		_, _, err := BuildTree(leaves, depth, 0)
		assert.Equal(t, ErrLeafCountMismatch, errors.Cause(err), "depth %d", depth)
	}
}

func TestBuildTreeParallelMatchesSequential(t *testing.T) {
	leaves, err := BuildLeaves(makeEntries(1<<10), 0)
	require.NoError(t, err)

	rootSeq, layersSeq, err := BuildTree(leaves, 10, 1)
	require.NoError(t, err)
	rootPar, layersPar, err := BuildTree(leaves, 10, 5)
	require.NoError(t, err)

	assert.True(t, rootSeq.Equal(rootPar))
	for level := range layersSeq {
		for i := range layersSeq[level] {
			assert.True(t, layersSeq[level][i].Equal(layersPar[level][i]), "level %d, index %d", level, i)
		}
	}
}
