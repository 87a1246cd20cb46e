/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "inclusion_tree"

// TreeMetrics collects tree construction and proof verification figures
// on its own registry. It implements merkletree.BuildObserver.
type TreeMetrics struct {
	registry *prometheus.Registry

	builds        prometheus.Counter
	buildDuration prometheus.Histogram
	leaves        prometheus.Gauge
	depth         prometheus.Gauge
	verifications *prometheus.CounterVec
}

func NewTreeMetrics() *TreeMetrics {
	m := &TreeMetrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(namespace, "build", "total"),
			Help: "Number of trees built",
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prometheus.BuildFQName(namespace, "build", "duration_seconds"),
			Help:    "Time spent hashing leaves and layers",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		leaves: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheus.BuildFQName(namespace, "tree", "leaves"),
			Help: "Leaf count of the last built tree, padding included",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheus.BuildFQName(namespace, "tree", "depth"),
			Help: "Depth of the last built tree",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(namespace, "proof", "verifications_total"),
			Help: "Proof verifications by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(m.builds, m.buildDuration, m.leaves, m.depth, m.verifications)
	return m
}

func (m *TreeMetrics) ObserveBuild(leaves, depth int, elapsed time.Duration) {
	m.builds.Inc()
	m.buildDuration.Observe(elapsed.Seconds())
	m.leaves.Set(float64(leaves))
	m.depth.Set(float64(depth))
}

// ObserveVerification counts one verification. A non-nil err means the
// proof was malformed.
func (m *TreeMetrics) ObserveVerification(ok bool, err error) {
	result := "valid"
	switch {
	case err != nil:
		result = "malformed"
	case !ok:
		result = "invalid"
	}
	m.verifications.WithLabelValues(result).Inc()
}

func (m *TreeMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile dumps the collected metrics in the text exposition
// format, for the node exporter textfile collector.
func (m *TreeMetrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "unable to write metrics to %s", path)
	}
	return nil
}
