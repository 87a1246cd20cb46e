/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFetchIdentifiers(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		hasHeader bool
		want      []string
	}{
		{
			name:      "header with balances",
			content:   "username,balance_eth,balance_usdt\ndxGaEAii,11888,41163\nMBlfbBGI,67823,18651\n",
			hasHeader: true,
			want:      []string{"dxGaEAii", "MBlfbBGI"},
		},
		{
			name:      "header named identifier",
			content:   "identifier\nalice\nbob\n",
			hasHeader: true,
			want:      []string{"alice", "bob"},
		},
		{
			name:      "no header",
			content:   "alice,1\nbob,2\ncarol,3\n",
			hasHeader: false,
			want:      []string{"alice", "bob", "carol"},
		},
		{
			name:      "single column without header",
			content:   "alice\n",
			hasHeader: false,
			want:      []string{"alice"},
		},
		{
			name:      "header only",
			content:   "username\n",
			hasHeader: true,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCSVStorage(writeFile(t, tt.content), tt.hasHeader).FetchIdentifiers()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchRecordsMissingColumn(t *testing.T) {
	path := writeFile(t, "username,balance\nalice,1\nbob\n")

	_, err := NewCSVStorage(path, true).FetchRecords()
	assert.Error(t, err)
}

func TestFetchRecordsMissingFile(t *testing.T) {
	_, err := NewCSVStorage(filepath.Join(t.TempDir(), "absent.csv"), true).FetchRecords()
	assert.Error(t, err)
}

func TestFetchRecordsEmptyFile(t *testing.T) {
	_, err := NewCSVStorage(writeFile(t, ""), true).FetchRecords()
	assert.Error(t, err)
}

func TestSaveRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := []Record{{Identifier: "alice"}, {Identifier: "bob"}}

	require.NoError(t, NewCSVStorage(path, true).SaveRecords(rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "identifier\nalice\nbob\n", string(data))

	got, err := NewCSVStorage(path, true).FetchRecords()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
