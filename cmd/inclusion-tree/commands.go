/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Subhasish-Behera/enclave-inclusion/types/field"
	"github.com/Subhasish-Behera/enclave-inclusion/types/merkletree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (app *App) buildTree() (*merkletree.MerkleTree, error) {
	if app.config.Input == "" {
		return nil, errors.New("input CSV is not set, use --input or the config file")
	}

	opts := []merkletree.Option{
		merkletree.WithWorkers(app.config.Workers),
		merkletree.WithObserver(app.metrics),
		merkletree.WithCSVHeader(app.config.HasHeader),
	}

	var (
		tree *merkletree.MerkleTree
		err  error
	)
	if app.config.Sorted {
		tree, err = merkletree.FromCSVSorted(app.config.Input, opts...)
	} else {
		tree, err = merkletree.FromCSV(app.config.Input, opts...)
	}
	if err != nil {
		return nil, err
	}

	app.log.Info().
		Str("input", app.config.Input).
		Int("entries", tree.Size()).
		Int("depth", tree.Depth()).
		Str("root", tree.Root().String()).
		Msg("tree built")
	return tree, nil
}

func (app *App) RootCmd(*cli.Context) error {
	tree, err := app.buildTree()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(app.out, "depth:   %d\n", tree.Depth())
	fmt.Fprintf(app.out, "leaves:  %d\n", len(tree.Leaves()))
	fmt.Fprintf(app.out, "entries: %d\n", tree.Size())
	fmt.Fprintf(app.out, "root:    %s\n", tree.Root())
	return nil
}

func (app *App) LayersCmd(*cli.Context) error {
	tree, err := app.buildTree()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var rows [][]string
	for level, layer := range tree.Layers() {
		for index, node := range layer {
			rows = append(rows, []string{strconv.Itoa(level), strconv.Itoa(index), node.String()})
		}
	}

	table := tablewriter.NewWriter(app.out)
	table.SetHeader([]string{"Level", "Index", "Hash"})
	table.SetAutoMergeCells(true)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func (app *App) ProveCmd(c *cli.Context) error {
	hasID, hasIndex := c.IsSet(flagID), c.IsSet(flagIndex)
	if hasID == hasIndex {
		return cli.NewExitError("exactly one of --id or --index is required", 1)
	}

	tree, err := app.buildTree()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var proof *merkletree.MerkleProof
	if hasID {
		proof, err = tree.GenerateProofFor(c.String(flagID))
	} else {
		proof, err = tree.GenerateProof(c.Int(flagIndex))
	}
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to generate proof"), 1)
	}

	data, err := json.MarshalIndent(proof, "", "  ")
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to encode proof"), 1)
	}

	out := c.String(flagOut)
	if out == "" {
		fmt.Fprintln(app.out, string(data))
		return nil
	}
	if err = os.WriteFile(out, append(data, '\n'), 0644); err != nil {
		return cli.NewExitError(errors.Wrapf(err, "unable to write proof to %s", out), 1)
	}

	app.log.Info().Str("identifier", proof.Entry.Identifier()).Str("out", out).Msg("proof saved")
	return nil
}

func (app *App) VerifyCmd(c *cli.Context) error {
	proof, err := readProof(c.String(flagProof))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var ok bool
	if rootHex := c.String(flagRoot); rootHex != "" {
		hash, perr := field.ParseHex(rootHex)
		if perr != nil {
			return cli.NewExitError(errors.Wrap(perr, "invalid --root"), 1)
		}
		ok, err = merkletree.VerifyProofForRoot(proof, merkletree.Node{Hash: hash})
	} else {
		ok, err = merkletree.VerifyProof(proof)
	}
	app.metrics.ObserveVerification(ok, err)

	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "proof rejected"), 1)
	}
	if !ok {
		return cli.NewExitError("proof is invalid", 1)
	}

	fmt.Fprintf(app.out, "proof is valid: %q is included under root %s\n", proof.Entry.Identifier(), proof.Root)
	return nil
}

func (app *App) DumpCmd(c *cli.Context) error {
	proof, err := readProof(c.String(flagProof))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	spew.Fdump(app.out, proof)
	return nil
}

func readProof(path string) (*merkletree.MerkleProof, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read proof")
	}

	proof := new(merkletree.MerkleProof)
	if err = json.Unmarshal(data, proof); err != nil {
		return nil, errors.Wrap(err, "unable to decode proof")
	}
	return proof, nil
}
