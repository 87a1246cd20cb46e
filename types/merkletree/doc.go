/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package merkletree implements a binary commitment tree over an ordered
// set of opaque records, together with inclusion proofs that a record
// holder can check against a published root without the full record set.
//
// Hashing rules:
//
// 	entry.FieldHash = keccak256(identifier) mod p
// 	leaf            = H1(entry.FieldHash)
// 	middle          = H2(left.Hash, right.Hash)
//
// where p is the BN254 scalar field prime and H1/H2 are Poseidon.
//
// Tree Topology (3 entries, padded to 4 with the zero entry):
//
// 	      2:              root = H2(n01, n23)
// 	                     /                  \
// 	      1:      n01 = H2(a, b)        n23 = H2(c, z)
// 	               /      \              /       \
// 	      0:      a        b            c         z
//
// A proof for c carries the leaf preimage of z, the preimage [a, b] of
// n01 and the path indices [0, 1]: c is a left child at level 0 and n23
// is a right child at level 1.
//
// Trees are immutable once built and safe for concurrent readers.
package merkletree
