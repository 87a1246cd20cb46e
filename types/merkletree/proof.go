/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
)

// MerkleProof is an inclusion proof of Entry under Root.
//
// PathIndices[level] is 0 when the proven node is the left child at that
// level and 1 when it is the right one. MiddleSiblingPreimages[i] holds the
// [left, right] child hashes of the sibling met at level i+1. A proof for a
// tree of depth d has d path indices and d-1 middle preimages.
type MerkleProof struct {
	Entry                  Entry
	Root                   Node
	LeafSiblingPreimage    [1]field.Element
	MiddleSiblingPreimages [][2]field.Element
	PathIndices            []field.Element
}

// Depth returns the depth of the tree the proof was issued for.
func (p *MerkleProof) Depth() int {
	return len(p.PathIndices)
}

// LeafIndex returns the leaf position encoded by the path indices.
func (p *MerkleProof) LeafIndex() (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	index := 0
	for level := len(p.PathIndices) - 1; level >= 0; level-- {
		index <<= 1
		if p.PathIndices[level].IsOne() {
			index |= 1
		}
	}

	return index, nil
}

// Validate checks the shape of the proof.
func (p *MerkleProof) Validate() error {
	if p == nil {
		return errors.Wrap(ErrMalformedProof, "proof is nil")
	}

	depth := len(p.PathIndices)
	if depth > MaxDepth {
		return errors.Wrapf(ErrMalformedProof, "depth %d exceeds %d", depth, MaxDepth)
	}

	if depth == 0 {
		if len(p.MiddleSiblingPreimages) != 0 {
			return errors.Wrapf(ErrMalformedProof,
				"single leaf proof carries %d middle preimages", len(p.MiddleSiblingPreimages))
		}
		if !p.LeafSiblingPreimage[0].IsZero() {
			return errors.Wrap(ErrMalformedProof, "single leaf proof carries a leaf sibling")
		}
	} else if len(p.MiddleSiblingPreimages) != depth-1 {
		return errors.Wrapf(ErrMalformedProof, "got %d middle preimages for %d path indices",
			len(p.MiddleSiblingPreimages), depth)
	}

	for level := range p.PathIndices {
		if !p.PathIndices[level].IsZero() && !p.PathIndices[level].IsOne() {
			return errors.Wrapf(ErrMalformedProof, "path index at level %d is not 0 or 1", level)
		}
	}

	if !p.Entry.consistent() {
		return errors.Wrapf(ErrMalformedProof, "field hash of entry %q does not match its identifier",
			p.Entry.Identifier())
	}

	return nil
}

// Clone returns a deep copy of the proof.
func (p *MerkleProof) Clone() *MerkleProof {
	if p == nil {
		return nil
	}

	clone := *p
	clone.MiddleSiblingPreimages = append([][2]field.Element(nil), p.MiddleSiblingPreimages...)
	clone.PathIndices = append([]field.Element(nil), p.PathIndices...)
	return &clone
}

type proofDTO struct {
	Entry                  Entry       `json:"entry"`
	Root                   Node        `json:"root"`
	LeafSiblingPreimage    [1]string   `json:"leaf_sibling_preimage"`
	MiddleSiblingPreimages [][2]string `json:"middle_sibling_preimages"`
	PathIndices            []int       `json:"path_indices"`
}

func (p *MerkleProof) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := proofDTO{
		Entry:                  p.Entry,
		Root:                   p.Root,
		LeafSiblingPreimage:    [1]string{field.Hex(p.LeafSiblingPreimage[0])},
		MiddleSiblingPreimages: make([][2]string, len(p.MiddleSiblingPreimages)),
		PathIndices:            make([]int, len(p.PathIndices)),
	}

	for i, preimage := range p.MiddleSiblingPreimages {
		d.MiddleSiblingPreimages[i] = [2]string{field.Hex(preimage[0]), field.Hex(preimage[1])}
	}
	for i := range p.PathIndices {
		if p.PathIndices[i].IsOne() {
			d.PathIndices[i] = 1
		}
	}

	return json.Marshal(d)
}

func (p *MerkleProof) UnmarshalJSON(data []byte) error {
	var d proofDTO
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	leafSibling, err := field.ParseHex(d.LeafSiblingPreimage[0])
	if err != nil {
		return errors.Wrap(err, "unable to decode leaf sibling preimage")
	}

	middle := make([][2]field.Element, len(d.MiddleSiblingPreimages))
	for i, preimage := range d.MiddleSiblingPreimages {
		for j := range preimage {
			middle[i][j], err = field.ParseHex(preimage[j])
			if err != nil {
				return errors.Wrapf(err, "unable to decode middle preimage %d", i)
			}
		}
	}

	path := make([]field.Element, len(d.PathIndices))
	for i, bit := range d.PathIndices {
		if bit != 0 && bit != 1 {
			return errors.Wrapf(ErrMalformedProof, "path index at level %d is %d", i, bit)
		}
		path[i] = field.FromUint64(uint64(bit))
	}

	*p = MerkleProof{
		Entry:                  d.Entry,
		Root:                   d.Root,
		LeafSiblingPreimage:    [1]field.Element{leafSibling},
		MiddleSiblingPreimages: middle,
		PathIndices:            path,
	}
	return nil
}
