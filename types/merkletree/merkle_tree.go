/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
)

// MerkleTree is the in-memory commitment tree. Entries are padded with
// the zero entry up to 2^depth and are positionally aligned with the
// leaves in layers[0].
type MerkleTree struct {
	root    Node
	layers  [][]Node
	depth   int
	entries []Entry
	// size is the number of entries before padding.
	size   int
	sorted bool
}

// FromEntries builds a tree over entries. When sorted is set the entries
// must be non-decreasing by identifier bytes; lookups then use binary
// search.
func FromEntries(entries []Entry, sorted bool, opts ...Option) (*MerkleTree, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	if sorted && !entriesSorted(entries) {
		return nil, ErrUnsortedEntries
	}

	o := newOptions(opts)
	start := time.Now()

	depth := DepthFor(len(entries))
	padded := make([]Entry, 1<<uint(depth))
	copy(padded, entries)
	for i := len(entries); i < len(padded); i++ {
		padded[i] = ZeroEntry()
	}

	leaves, err := BuildLeaves(padded, o.workers)
	if err != nil {
		return nil, err
	}
	root, layers, err := BuildTree(leaves, depth, o.workers)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build tree layers")
	}

	elapsed := time.Since(start)
	log.Debug().
		Int("entries", len(entries)).
		Int("leaves", len(leaves)).
		Int("depth", depth).
		Bool("sorted", sorted).
		Dur("elapsed", elapsed).
		Str("root", root.String()).
		Msg("merkle tree built")

	if o.observer != nil {
		o.observer.ObserveBuild(len(leaves), depth, elapsed)
	}

	return &MerkleTree{
		root:    root,
		layers:  layers,
		depth:   depth,
		entries: padded,
		size:    len(entries),
		sorted:  sorted,
	}, nil
}

// FromParams restores a tree from previously built parts. entries may
// be given with or without padding; every shape invariant is checked
// but hashes are not recomputed.
func FromParams(root Node, layers [][]Node, depth int, entries []Entry, sorted bool) (*MerkleTree, error) {
	if depth < 0 || depth > MaxDepth {
		return nil, errors.Wrapf(ErrInvalidDepth, "depth %d", depth)
	}
	if len(layers) != depth+1 {
		return nil, errors.Wrapf(ErrInvalidLayers, "got %d layers for depth %d", len(layers), depth)
	}
	for level := range layers {
		want := 1 << uint(depth-level)
		if len(layers[level]) != want {
			return nil, errors.Wrapf(ErrInvalidLayers,
				"layer %d has %d nodes, expected %d", level, len(layers[level]), want)
		}
	}
	if !layers[depth][0].Equal(root) {
		return nil, errors.Wrap(ErrInvalidLayers, "root does not match the top layer")
	}

	size := len(entries)
	for size > 0 && entries[size-1].IsPadding() {
		size--
	}
	if size == 0 || len(entries) > len(layers[0]) {
		return nil, errors.Wrapf(ErrInvalidLayers, "%d entries for %d leaves", len(entries), len(layers[0]))
	}
	if sorted && !entriesSorted(entries[:size]) {
		return nil, ErrUnsortedEntries
	}

	padded := make([]Entry, len(layers[0]))
	copy(padded, entries)
	for i := len(entries); i < len(padded); i++ {
		padded[i] = ZeroEntry()
	}

	owned := make([][]Node, len(layers))
	for level := range layers {
		owned[level] = append([]Node(nil), layers[level]...)
	}

	return &MerkleTree{
		root:    root,
		layers:  owned,
		depth:   depth,
		entries: padded,
		size:    size,
		sorted:  sorted,
	}, nil
}

func entriesSorted(entries []Entry) bool {
	return sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].identifier < entries[j].identifier
	})
}

func (t *MerkleTree) Root() Node { return t.root }

func (t *MerkleTree) Depth() int { return t.depth }

// Layers returns the node matrix. It must not be modified.
func (t *MerkleTree) Layers() [][]Node { return t.layers }

func (t *MerkleTree) Leaves() []Node { return t.layers[0] }

// Entries returns the padded entry list. It must not be modified.
func (t *MerkleTree) Entries() []Entry { return t.entries }

// Size returns the number of entries the tree was built from.
func (t *MerkleTree) Size() int { return t.size }

func (t *MerkleTree) Sorted() bool { return t.sorted }

func (t *MerkleTree) EntryAt(index int) (Entry, error) {
	if index < 0 || index >= len(t.entries) {
		return Entry{}, errors.Wrapf(ErrIndexOutOfBounds, "entry %d of %d", index, len(t.entries))
	}
	return t.entries[index], nil
}

// IndexOf returns the leaf index of the first entry with the identifier.
// Padding is never matched.
func (t *MerkleTree) IndexOf(identifier string) (int, error) {
	entries := t.entries[:t.size]

	if !t.sorted {
		for i := range entries {
			if entries[i].identifier == identifier {
				return i, nil
			}
		}
		return -1, errors.Wrapf(ErrDataNotFound, "identifier %q", identifier)
	}

	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].identifier >= identifier
	})
	if i < len(entries) && entries[i].identifier == identifier {
		return i, nil
	}

	return -1, errors.Wrapf(ErrDataNotFound, "identifier %q", identifier)
}

func (t *MerkleTree) MiddleSiblingPreimage(level, index int) ([2]field.Element, error) {
	return MiddleSiblingPreimage(t, level, index)
}

func (t *MerkleTree) LeafSiblingPreimage(index int) ([1]field.Element, error) {
	return LeafSiblingPreimage(t, index)
}

func (t *MerkleTree) GenerateProof(index int) (*MerkleProof, error) {
	return GenerateProof(t, index)
}

// GenerateProofFor looks the identifier up and proves its entry.
func (t *MerkleTree) GenerateProofFor(identifier string) (*MerkleProof, error) {
	index, err := t.IndexOf(identifier)
	if err != nil {
		return nil, err
	}
	return GenerateProof(t, index)
}

func (t *MerkleTree) VerifyProof(proof *MerkleProof) (bool, error) {
	return VerifyProof(proof)
}
