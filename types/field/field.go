/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package field exposes the prime field every tree hash lives in: the
// scalar field of the BN254 curve.
//
// Values are reduced modulo the field prime on conversion, so any big
// integer (a 256-bit digest included) maps to exactly one element.
package field

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// Size is the length of the canonical big-endian encoding of an Element.
const Size = fr.Bytes

var (
	ErrInvalidHex   = errors.New("invalid hex encoding of field element")
	ErrNotCanonical = errors.New("value is not a canonical field element")
)

// Element is a BN254 scalar field element. The zero value is the field zero.
type Element = fr.Element

// Modulus returns a copy of the field prime.
func Modulus() *big.Int { return fr.Modulus() }

func Zero() Element { return Element{} }

func One() Element {
	var e Element
	e.SetOne()
	return e
}

// FromUint64 returns v as a field element.
func FromUint64(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// FromBigInt returns v reduced modulo the field prime.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.SetBigInt(v)
	return e
}

// FromBytes interprets b as a big-endian unsigned integer and reduces it
// into the field.
func FromBytes(b []byte) Element {
	return FromBigInt(new(big.Int).SetBytes(b))
}

// ToBigInt returns the canonical (non-Montgomery) value of e.
func ToBigInt(e Element) *big.Int {
	return e.BigInt(new(big.Int))
}

func Equal(a, b Element) bool { return a.Equal(&b) }

func IsZero(e Element) bool { return e.IsZero() }

// Hex returns the 0x-prefixed, fixed width big-endian encoding of e.
func Hex(e Element) string {
	b := e.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// ParseHex decodes a value produced by Hex. The prefix is optional, but
// the value must be strictly lower than the modulus so that every element
// has exactly one textual form.
func ParseHex(s string) (Element, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if raw == "" || len(raw) > 2*Size {
		return Element{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}

	v, ok := new(big.Int).SetString(raw, 16)
	if !ok {
		return Element{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}

	if v.Cmp(fr.Modulus()) >= 0 {
		return Element{}, errors.Wrapf(ErrNotCanonical, "%q", s)
	}

	return FromBigInt(v), nil
}
