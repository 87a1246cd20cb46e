/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFromCSV(t *testing.T) {
	path := writeCSV(t, "username,balance_eth\ncarol,1\nalice,2\nbob,3\n")

	tree, err := FromCSV(path)
	require.NoError(t, err)
	assert.False(t, tree.Sorted())
	assert.Equal(t, 3, tree.Size())

	expected, err := FromEntries([]Entry{NewEntry("carol"), NewEntry("alice"), NewEntry("bob")}, false)
	require.NoError(t, err)
	assert.True(t, expected.Root().Equal(tree.Root()))

	index, err := tree.IndexOf("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestFromCSVSorted(t *testing.T) {
	path := writeCSV(t, "carol\nalice\nbob\n")

	tree, err := FromCSVSorted(path, WithCSVHeader(false), WithWorkers(2))
	require.NoError(t, err)
	assert.True(t, tree.Sorted())

	identifiers := make([]string, 0, tree.Size())
	for _, entry := range tree.Entries()[:tree.Size()] {
		identifiers = append(identifiers, entry.Identifier())
	}
	assert.Equal(t, []string{"alice", "bob", "carol"}, identifiers)

	index, err := tree.IndexOf("carol")
	require.NoError(t, err)
	assert.Equal(t, 2, index)
}

func TestFromCSVErrors(t *testing.T) {
	_, err := FromCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)

	_, err = FromCSV(writeCSV(t, "username,balance\nalice\n"))
	assert.Error(t, err)

	_, err = FromCSVSorted(writeCSV(t, "username\n"))
	assert.Error(t, err)
}
