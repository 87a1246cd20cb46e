/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/Subhasish-Behera/enclave-inclusion/types/merkletree"
)

func run(t *testing.T, args ...string) (string, int, error) {
	exitCode := 0
	cli.OsExiter = func(code int) { exitCode = code }
	t.Cleanup(func() { cli.OsExiter = os.Exit })

	out := new(bytes.Buffer)
	app := NewApp(out)
	cliApp := app.CLI()
	cliApp.ErrWriter = new(bytes.Buffer)

	err := cliApp.Run(append([]string{"inclusion-tree", "--log-level", "error"}, args...))
	return out.String(), exitCode, err
}

func writeInput(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("identifier\nc\na\nb\n"), 0644))
	return path
}

func TestRootCmd(t *testing.T) {
	input := writeInput(t)
	tree, err := merkletree.FromCSV(input)
	require.NoError(t, err)

	out, _, err := run(t, "--input", input, "root")
	require.NoError(t, err)
	assert.Contains(t, out, "depth:   2")
	assert.Contains(t, out, "entries: 3")
	assert.Contains(t, out, tree.Root().String())
}

func TestLayersCmd(t *testing.T) {
	input := writeInput(t)

	out, _, err := run(t, "--input", input, "--sorted", "layers")
	require.NoError(t, err)
	assert.Contains(t, out, "LEVEL")

	tree, err := merkletree.FromCSVSorted(input)
	require.NoError(t, err)
	for _, layer := range tree.Layers() {
		for _, node := range layer {
			assert.Contains(t, out, node.String())
		}
	}
}

func TestProveAndVerify(t *testing.T) {
	input := writeInput(t)
	proofPath := filepath.Join(t.TempDir(), "proof.json")

	_, _, err := run(t, "--input", input, "prove", "--id", "b", "--out", proofPath)
	require.NoError(t, err)

	out, code, err := run(t, "verify", "--proof", proofPath)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "proof is valid")

	tree, err := merkletree.FromCSV(input)
	require.NoError(t, err)
	_, _, err = run(t, "verify", "--proof", proofPath, "--root", tree.Root().String())
	require.NoError(t, err)

	_, code, err = run(t, "verify", "--proof", proofPath, "--root", "0x01")
	assert.Error(t, err)
	assert.Equal(t, 1, code)

	out, _, err = run(t, "dump", "--proof", proofPath)
	require.NoError(t, err)
	assert.Contains(t, out, "MerkleProof")
}

func TestProveByIndexToStdout(t *testing.T) {
	input := writeInput(t)

	out, _, err := run(t, "--input", input, "prove", "--index", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"path_indices"`)

	var proof merkletree.MerkleProof
	require.NoError(t, json.Unmarshal([]byte(out), &proof))
	assert.Equal(t, "b", proof.Entry.Identifier())
}

func TestProveRequiresExactlyOneSelector(t *testing.T) {
	input := writeInput(t)

	_, code, err := run(t, "--input", input, "prove")
	assert.Error(t, err)
	assert.Equal(t, 1, code)

	_, _, err = run(t, "--input", input, "prove", "--id", "a", "--index", "0")
	assert.Error(t, err)
}

func TestMetricsFile(t *testing.T) {
	input := writeInput(t)
	metricsPath := filepath.Join(t.TempDir(), "tree.prom")

	_, _, err := run(t, "--input", input, "--metrics-file", metricsPath, "root")
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "inclusion_tree_tree_leaves 4")
}

func TestMissingInput(t *testing.T) {
	_, code, err := run(t, "root")
	assert.Error(t, err)
	assert.Equal(t, 1, code)
}
