// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// generator.go - the growth loop.
//
// Run phases:
//  1. Growing: draw a target module count on the mutation stream, then mutate
//     until the patch holds that many modules (reserved modules excluded).
//     Each iteration draws a category, gates it, picks one of its mutations,
//     gates that, and applies it to an eligible track picked on the
//     track-assignment stream. Failed gates and no-ops leave the patch as is.
//  2. Finalizing: every track whose tail sends audio feeds the output sink.
//  3. Wiring controllers: the control surface is generated over the patch.
//
// Determinism:
//   - A Run is a pure function of the parameters: every stream is re-derived
//     from the seed, so repeated Runs produce identical results.

package evolve

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/naming"
	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
	"github.com/katalvlaran/kipple/surface"
)

// Generator turns validated parameters into patches.
type Generator struct {
	params        config.Params
	registry      *Registry
	log           zerolog.Logger
	rec           Recorder
	maxIterations int
	nameOpts      []naming.Option
}

// New validates params and builds the mutation registry.
func New(params config.Params, opts ...Option) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		params: params.Clone(),
		log:    zerolog.Nop(),
		rec:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		reg, err := NewRegistry(g.params)
		if err != nil {
			return nil, err
		}
		g.registry = reg
	}

	return g, nil
}

// Params returns a copy of the parameters.
func (g *Generator) Params() config.Params { return g.params.Clone() }

// Registry returns the registry in use.
func (g *Generator) Registry() *Registry { return g.registry }

// run is the mutable state of one Run.
type run struct {
	params   config.Params
	registry *Registry
	log      zerolog.Logger
	rec      Recorder

	rngs  *rng.Manager
	patch *patch.Patch
	arena *Arena
}

// Run generates one patch. On error no partial result is returned.
func (g *Generator) Run() (*Result, error) {
	start := time.Now()
	log := g.log.With().Int64("seed", g.params.Seed).Logger()

	rngs := rng.New(g.params.Seed)
	names := naming.New(rngs.Names(), g.nameOpts...)
	p := patch.New(g.params.ProjectName())

	r := &run{
		params:   g.params,
		registry: g.registry,
		log:      log,
		rec:      g.rec,
		rngs:     rngs,
		patch:    p,
		arena:    NewArena(p, rngs),
	}
	r.arena.log = log

	root, err := r.arena.Spawn(NoTrack)
	if err != nil {
		return nil, err
	}
	if err = root.Append(patch.NoteInID); err != nil {
		return nil, err
	}

	target := rngs.Mutations().IntRange(g.params.ModuleCountMin, g.params.ModuleCountMax)
	log.Info().Int("target", target).Msg("growing")

	iterations, err := r.grow(target, g.maxIterations)
	if err != nil {
		return nil, err
	}
	grown := p.ModuleCount()

	outputs, err := r.finalize()
	if err != nil {
		return nil, err
	}
	log.Info().Int("modules", grown).Int("tracks", r.arena.Len()).Int("outputs", outputs).
		Int("iterations", iterations).Msg("finalized")

	surf, err := surface.Generate(p, names, rngs.Names())
	if err != nil {
		return nil, err
	}
	log.Info().Int("bindings", surf.Len()).Msg("control surface wired")

	g.rec.ObserveRun(grown, r.arena.Len(), time.Since(start))

	return newResult(g.params, target, grown, p, surf, r.arena), nil
}

// grow runs the mutation loop until the module target is met.
// limit <= 0 means no iteration ceiling.
func (r *run) grow(target, limit int) (int, error) {
	mut := r.rngs.Mutations()
	assign := r.rngs.Tracks()
	cats := Categories()

	iterations := 0
	for r.patch.ModuleCount() < target {
		if limit > 0 && iterations >= limit {
			return iterations, fmt.Errorf("grow: %d iterations, %d/%d modules: %w",
				iterations, r.patch.ModuleCount(), target, ErrGrowthStalled)
		}
		iterations++

		c := cats[mut.Intn(len(cats))]
		if !mut.Gate(r.params.CategoryProbability(c.String())) {
			r.rec.ObserveIteration(OutcomeCategoryGate)
			continue
		}
		m, ok := rng.Pick(mut, r.registry.InCategory(c))
		if !ok || !mut.Gate(m.Probability) {
			r.rec.ObserveIteration(OutcomeMutationGate)
			continue
		}
		t, ok := rng.Pick(assign, r.arena.Eligible(c))
		if !ok {
			r.rec.ObserveIteration(OutcomeNoTrack)
			r.log.Trace().Str("mutation", m.Name).Msg("no eligible track")
			continue
		}

		applied, err := m.apply(r, t)
		if err != nil {
			return iterations, fmt.Errorf("grow: %s on track %d: %w", m.Name, t.ID(), err)
		}
		if !applied {
			r.rec.ObserveIteration(OutcomeNoop)
			r.log.Trace().Str("mutation", m.Name).Int("track", int(t.ID())).Msg("no-op")
			continue
		}
		r.rec.ObserveIteration(OutcomeApplied)
		r.rec.ObserveMutation(c.String(), m.Name)
		r.log.Debug().Str("mutation", m.Name).Str("category", c.String()).
			Int("track", int(t.ID())).Int("modules", r.patch.ModuleCount()).Msg("mutation")
	}

	return iterations, nil
}

// finalize connects every audio-sending tail to the output sink.
func (r *run) finalize() (int, error) {
	n := 0
	for _, t := range r.arena.Eligible(Effect) {
		tail, _ := t.Tail()
		if err := r.patch.Connect(tail, patch.OutputID); err != nil {
			return n, fmt.Errorf("finalize: track %d: %w", t.ID(), err)
		}
		n++
	}
	return n, nil
}
