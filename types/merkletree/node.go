/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"encoding/json"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
	"github.com/Subhasish-Behera/enclave-inclusion/types/fieldhash"
)

// Node is a tree node. Leaves and middle nodes only differ in how the
// hash was derived.
type Node struct {
	Hash field.Element
}

// LeafNode builds a level 0 node: H1(data).
func LeafNode(data field.Element) Node {
	return Node{Hash: fieldhash.Hash1(data)}
}

// MiddleNode builds a parent node: H2(left.Hash, right.Hash).
func MiddleNode(left, right Node) Node {
	return Node{Hash: fieldhash.Hash2(left.Hash, right.Hash)}
}

// LeafNodeFromPreimage rebuilds a leaf when only its preimage is known.
func LeafNodeFromPreimage(preimage [1]field.Element) Node {
	return Node{Hash: fieldhash.Hash1(preimage[0])}
}

// MiddleNodeFromPreimage rebuilds a parent from the [left, right] hashes
// of its children.
func MiddleNodeFromPreimage(preimage [2]field.Element) Node {
	return Node{Hash: fieldhash.Hash2(preimage[0], preimage[1])}
}

// EmptyNode returns the node with a zero hash.
func EmptyNode() Node {
	return Node{}
}

func (n Node) Equal(other Node) bool {
	return n.Hash.Equal(&other.Hash)
}

func (n Node) String() string {
	return field.Hex(n.Hash)
}

func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(field.Hex(n.Hash))
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	hash, err := field.ParseHex(s)
	if err != nil {
		return err
	}

	n.Hash = hash
	return nil
}
