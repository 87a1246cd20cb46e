/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkletree

import (
	"time"
)

// BuildObserver is notified once a tree has been built.
type BuildObserver interface {
	ObserveBuild(leaves, depth int, elapsed time.Duration)
}

// Option tunes tree construction.
type Option func(*options)

type options struct {
	workers   int
	observer  BuildObserver
	csvHeader bool
}

func newOptions(opts []Option) options {
	o := options{csvHeader: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets how many goroutines hash leaves and layers. Values
// below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func WithObserver(observer BuildObserver) Option {
	return func(o *options) { o.observer = observer }
}

// WithCSVHeader tells the CSV constructors whether the first row is a
// header. Defaults to true.
func WithCSVHeader(hasHeader bool) Option {
	return func(o *options) { o.csvHeader = hasHeader }
}
