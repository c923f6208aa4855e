// SPDX-License-Identifier: MIT
// Package: kipple/metrics
//
// metrics.go - prometheus instruments for generation runs.

package metrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "kipple"

// Collector records growth-loop events. It satisfies evolve.Recorder.
type Collector struct {
	iterations *prometheus.CounterVec
	mutations  *prometheus.CounterVec
	runs       prometheus.Counter
	modules    prometheus.Histogram
	tracks     prometheus.Histogram
	duration   prometheus.Histogram
}

// NewCollector creates the instruments and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "growth",
				Name:      "iterations_total",
				Help:      "Growth-loop iterations by outcome.",
			},
			[]string{"outcome"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "growth",
				Name:      "mutations_total",
				Help:      "Applied mutations by category and name.",
			},
			[]string{"category", "mutation"},
		),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed generation runs.",
		}),
		modules: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_modules",
			Help:      "Modules per finished patch, reserved modules excluded.",
			Buckets:   prometheus.LinearBuckets(10, 20, 10),
		}),
		tracks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_tracks",
			Help:      "Tracks per finished patch.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a generation run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, col := range []prometheus.Collector{c.iterations, c.mutations, c.runs, c.modules, c.tracks, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// ObserveIteration counts one loop iteration.
func (c *Collector) ObserveIteration(outcome string) {
	c.iterations.WithLabelValues(outcome).Inc()
}

// ObserveMutation counts one applied mutation.
func (c *Collector) ObserveMutation(category, mutation string) {
	c.mutations.WithLabelValues(category, mutation).Inc()
}

// ObserveRun records a finished run.
func (c *Collector) ObserveRun(modules, tracks int, elapsed time.Duration) {
	c.runs.Inc()
	c.modules.Observe(float64(modules))
	c.tracks.Observe(float64(tracks))
	c.duration.Observe(elapsed.Seconds())
}

// WriteText writes every family gathered from g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Totals sums counters per family name, and reports sample counts for histograms.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		out[mf.GetName()] = sum(mf)
	}
	return out, nil
}

func sum(mf *dto.MetricFamily) float64 {
	var total float64
	for _, m := range mf.GetMetric() {
		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			total += m.GetCounter().GetValue()
		case dto.MetricType_GAUGE:
			total += m.GetGauge().GetValue()
		case dto.MetricType_HISTOGRAM:
			total += float64(m.GetHistogram().GetSampleCount())
		}
	}
	return total
}

// SortedKeys returns the keys of a Totals map in order.
func SortedKeys(totals map[string]float64) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
