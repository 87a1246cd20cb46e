/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"github.com/pkg/errors"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
)

// Tree is the storage a proof can be produced from. layers[0] holds the
// leaves, layers[depth] the root, and EntryAt(i) is the entry behind leaf i.
type Tree interface {
	Root() Node
	Depth() int
	Layers() [][]Node
	EntryAt(index int) (Entry, error)
}

// MiddleSiblingPreimage returns the [left, right] child hashes of the node
// at (level, index). Level must lie in (0, depth].
func MiddleSiblingPreimage(t Tree, level, index int) ([2]field.Element, error) {
	depth := t.Depth()
	if level <= 0 || level > depth {
		return [2]field.Element{}, errors.Wrapf(ErrInvalidDepth,
			"level %d is out of (0, %d]", level, depth)
	}

	layers := t.Layers()
	if level >= len(layers) || index < 0 || index >= len(layers[level]) {
		return [2]field.Element{}, errors.Wrapf(ErrNodeNotFound, "level %d, index %d", level, index)
	}

	children := layers[level-1]
	if 2*index+1 >= len(children) {
		return [2]field.Element{}, errors.Wrapf(ErrNodeNotFound,
			"children of level %d, index %d", level, index)
	}

	return [2]field.Element{children[2*index].Hash, children[2*index+1].Hash}, nil
}

// LeafSiblingPreimage returns the preimage of the leaf at index.
func LeafSiblingPreimage(t Tree, index int) ([1]field.Element, error) {
	entry, err := t.EntryAt(index)
	if err != nil {
		return [1]field.Element{}, err
	}

	return [1]field.Element{entry.FieldHash()}, nil
}

// GenerateProof collects the sibling preimages on the path from leaf
// index up to the root.
func GenerateProof(t Tree, index int) (*MerkleProof, error) {
	layers := t.Layers()
	depth := t.Depth()

	if len(layers) == 0 {
		return nil, errors.Wrap(ErrInvalidLayers, "tree has no layers")
	}
	if index < 0 || index >= len(layers[0]) {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "index %d, %d leaves", index, len(layers[0]))
	}
	if depth < 0 || depth > MaxDepth || len(layers[0]) != 1<<uint(depth) {
		return nil, errors.Wrapf(ErrLeafCountMismatch, "%d leaves for depth %d", len(layers[0]), depth)
	}

	entry, err := t.EntryAt(index)
	if err != nil {
		return nil, err
	}

	proof := &MerkleProof{
		Entry:       entry,
		Root:        t.Root(),
		PathIndices: make([]field.Element, depth),
	}

	if depth > 0 {
		proof.LeafSiblingPreimage, err = LeafSiblingPreimage(t, index^1)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get leaf sibling preimage")
		}
		proof.MiddleSiblingPreimages = make([][2]field.Element, 0, depth-1)
	}

	current := index
	for level := 0; level < depth; level++ {
		position := current & 1
		siblingIndex := current ^ 1

		// level 0 is covered by the leaf sibling preimage.
		if level > 0 {
			preimage, err := MiddleSiblingPreimage(t, level, siblingIndex)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to get sibling preimage at level %d", level)
			}
			proof.MiddleSiblingPreimages = append(proof.MiddleSiblingPreimages, preimage)
		}

		proof.PathIndices[level] = field.FromUint64(uint64(position))
		current >>= 1
	}

	return proof, nil
}

// VerifyProof recomputes the root from the proof and compares it with
// proof.Root. A structurally invalid proof is an error, not a false.
func VerifyProof(proof *MerkleProof) (bool, error) {
	if err := proof.Validate(); err != nil {
		return false, err
	}

	node := proof.Entry.ComputeLeaf()
	if len(proof.PathIndices) == 0 {
		return node.Equal(proof.Root), nil
	}

	sibling := LeafNodeFromPreimage(proof.LeafSiblingPreimage)
	node = fold(node, sibling, proof.PathIndices[0].IsOne())

	for i := 1; i < len(proof.PathIndices); i++ {
		sibling = MiddleNodeFromPreimage(proof.MiddleSiblingPreimages[i-1])
		node = fold(node, sibling, proof.PathIndices[i].IsOne())
	}

	return node.Equal(proof.Root), nil
}

// VerifyProofForRoot checks the proof and that it was issued for the
// published root.
func VerifyProofForRoot(proof *MerkleProof, published Node) (bool, error) {
	ok, err := VerifyProof(proof)
	if err != nil || !ok {
		return ok, err
	}

	return proof.Root.Equal(published), nil
}

// fold hashes current with its sibling; isRight tells whether current is
// the right child.
func fold(current, sibling Node, isRight bool) Node {
	if isRight {
		return MiddleNodeFromPreimage([2]field.Element{sibling.Hash, current.Hash})
	}
	return MiddleNodeFromPreimage([2]field.Element{current.Hash, sibling.Hash})
}
