/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package fieldhash provides the two field-to-field compression functions
// used by the commitment tree:
//
// 	Hash1(x)    = Poseidon(x)
// 	Hash2(x, y) = Poseidon(x, y)
//
// Poseidon is instantiated over the BN254 scalar field with the circom
// compatible constants, so the results can be reproduced inside a circuit.
package fieldhash

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/pkg/errors"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
)

// Hash1 compresses a single field element.
func Hash1(x field.Element) field.Element {
	return hash(x)
}

// Hash2 compresses an ordered pair of field elements. Hash2(x, y) and
// Hash2(y, x) are unrelated values.
func Hash2(x, y field.Element) field.Element {
	return hash(x, y)
}

func hash(inputs ...field.Element) field.Element {
	in := make([]*big.Int, len(inputs))
	for i := range inputs {
		in[i] = field.ToBigInt(inputs[i])
	}

	// Elements are always reduced, so poseidon can only fail on a
	// programming error in the input arity.
	out, err := poseidon.Hash(in)
	if err != nil {
		panic(errors.Wrapf(err, "poseidon hash of %d elements", len(inputs)))
	}

	return field.FromBigInt(out)
}
