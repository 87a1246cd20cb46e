/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidDepth      = errors.New("invalid depth")
	ErrNodeNotFound      = errors.New("node not found")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrDataNotFound      = errors.New("data not found")
	ErrNoEntries         = errors.New("no entries to build the tree from")
	ErrUnsortedEntries   = errors.New("entries are not sorted by identifier")
	ErrLeafCountMismatch = errors.New("leaf count is not 2^depth")
	ErrInvalidLayers     = errors.New("invalid tree layers")
	ErrMalformedProof    = errors.New("malformed merkle proof")
)
