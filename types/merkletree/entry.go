/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
)

// zeroIdentifier is the identifier of the padding entry.
const zeroIdentifier = "0"

// Entry is one committed record: its raw identifier and the identifier's
// keccak256 digest reduced into the field.
type Entry struct {
	identifier string
	fieldHash  field.Element
}

// NewEntry hashes identifier with keccak256 and reduces the big-endian
// digest modulo the field prime.
func NewEntry(identifier string) Entry {
	return Entry{
		identifier: identifier,
		fieldHash:  hashIdentifier(identifier),
	}
}

// ZeroEntry returns the record used to pad the leaf layer to a power of two.
func ZeroEntry() Entry {
	return Entry{identifier: zeroIdentifier}
}

func hashIdentifier(identifier string) field.Element {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(identifier))
	return field.FromBytes(h.Sum(nil))
}

func (e Entry) Identifier() string { return e.identifier }

func (e Entry) FieldHash() field.Element { return e.fieldHash }

// Equal reports whether both entries carry the same identifier.
func (e Entry) Equal(other Entry) bool {
	return e.identifier == other.identifier
}

// IsPadding reports whether e is the zero entry. A real record named "0"
// has a non-zero digest and is not padding.
func (e Entry) IsPadding() bool {
	return e.identifier == zeroIdentifier && e.fieldHash.IsZero()
}

// ComputeLeaf returns the leaf node committing to e.
func (e Entry) ComputeLeaf() Node {
	return LeafNode(e.fieldHash)
}

// consistent reports whether the field hash was derived from the identifier.
func (e Entry) consistent() bool {
	if e.IsPadding() {
		return true
	}

	expected := hashIdentifier(e.identifier)
	return e.fieldHash.Equal(&expected)
}

func (e Entry) String() string {
	return e.identifier
}

type entryDTO struct {
	Identifier string `json:"identifier"`
	FieldHash  string `json:"field_hash"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryDTO{
		Identifier: e.identifier,
		FieldHash:  field.Hex(e.fieldHash),
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var dto entryDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	fieldHash, err := field.ParseHex(dto.FieldHash)
	if err != nil {
		return errors.Wrap(err, "unable to decode entry field hash")
	}

	e.identifier = dto.Identifier
	e.fieldHash = fieldHash
	return nil
}
