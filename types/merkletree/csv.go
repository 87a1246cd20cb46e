/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/Subhasish-Behera/enclave-inclusion/storage"
)

// FromCSV builds an unsorted tree from the identifiers in column 0 of the
// CSV file at path.
func FromCSV(path string, opts ...Option) (*MerkleTree, error) {
	entries, err := readEntries(path, newOptions(opts))
	if err != nil {
		return nil, err
	}

	return FromEntries(entries, false, opts...)
}

// FromCSVSorted is FromCSV with the entries sorted by identifier bytes,
// enabling binary search lookups.
func FromCSVSorted(path string, opts ...Option) (*MerkleTree, error) {
	entries, err := readEntries(path, newOptions(opts))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].identifier < entries[j].identifier
	})

	return FromEntries(entries, true, opts...)
}

func readEntries(path string, o options) ([]Entry, error) {
	identifiers, err := storage.NewCSVStorage(path, o.csvHeader).FetchIdentifiers()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read entries")
	}

	entries := make([]Entry, len(identifiers))
	for i, identifier := range identifiers {
		entries[i] = NewEntry(identifier)
	}

	log.Debug().Str("path", path).Int("entries", len(entries)).Msg("entries loaded")
	return entries, nil
}
