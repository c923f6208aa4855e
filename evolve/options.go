// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// options.go - functional options for the Generator.
//
// Option constructors validate their inputs and panic on meaningless ones.
// Run itself never panics.

package evolve

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/kipple/naming"
)

// Iteration outcomes reported to a Recorder.
const (
	OutcomeApplied      = "applied"
	OutcomeCategoryGate = "gate_category"
	OutcomeMutationGate = "gate_mutation"
	OutcomeNoTrack      = "no_track"
	OutcomeNoop         = "noop"
)

// Recorder observes the growth loop. metrics.Collector implements it.
type Recorder interface {
	ObserveIteration(outcome string)
	ObserveMutation(category, mutation string)
	ObserveRun(modules, tracks int, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveIteration(string)            {}
func (nopRecorder) ObserveMutation(string, string)     {}
func (nopRecorder) ObserveRun(int, int, time.Duration) {}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithRecorder attaches a growth observer. Panics on nil.
func WithRecorder(rec Recorder) Option {
	if rec == nil {
		panic("evolve: WithRecorder(nil)")
	}
	return func(g *Generator) { g.rec = rec }
}

// WithRegistry replaces the registry built from the parameters. Panics on nil.
func WithRegistry(reg *Registry) Option {
	if reg == nil {
		panic("evolve: WithRegistry(nil)")
	}
	return func(g *Generator) { g.registry = reg }
}

// WithMaxIterations caps the growth loop; reaching the cap fails the run
// with ErrGrowthStalled. Panics on n < 1. The default is no cap.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("evolve: WithMaxIterations(n<1)")
	}
	return func(g *Generator) { g.maxIterations = n }
}

// WithNaming passes options to the naming generator of each run.
func WithNaming(opts ...naming.Option) Option {
	return func(g *Generator) { g.nameOpts = append(g.nameOpts, opts...) }
}
