// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// registry.go - mutation catalog and per-run registry.
//
// Contract:
//   - The catalog is a static table: name, category, behavior.
//   - A Registry binds each catalog entry to its configured probability.
//     It is built explicitly and handed to the Generator; nothing registers
//     itself at init time.
//   - Within a category, mutations keep catalog order.

package evolve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/patch"
)

// applyFunc performs one mutation on t. applied is false for a no-op
// (no partner, empty history); the patch is then untouched.
type applyFunc func(r *run, t *Track) (applied bool, err error)

// Mutation is one registered structural change.
type Mutation struct {
	Name        string
	Category    Category
	Probability int
	apply       applyFunc
}

type entry struct {
	name     string
	category Category
	apply    applyFunc
}

var catalog = []entry{
	{"analog_gen", Synth, addModule(patch.KindAnalogGenerator)},
	{"drumsynth", Synth, addModule(patch.KindDrumSynth)},
	{"fm", Synth, addModule(patch.KindFM)},
	{"generator", Synth, addModule(patch.KindGenerator)},
	{"kicker", Synth, addModule(patch.KindKicker)},
	{"sampler", Synth, addModule(patch.KindSampler)},
	{"spectravoice", Synth, addModule(patch.KindSpectraVoice)},
	{"glide", Synth, addModule(patch.KindGlide)},
	{"multisynth", Synth, addModule(patch.KindMultiSynth)},

	{"amplifier", Effect, addModule(patch.KindAmplifier, "dc_offset")},
	{"compressor", Effect, addModule(patch.KindCompressor)},
	{"dc_blocker", Effect, addModule(patch.KindDcBlocker)},
	{"delay", Effect, addModule(patch.KindDelay)},
	{"distortion", Effect, addModule(patch.KindDistortion)},
	{"echo", Effect, addModule(patch.KindEcho)},
	{"eq", Effect, addModule(patch.KindEq)},
	{"filter", Effect, addModule(patch.KindFilter)},
	{"filter_pro", Effect, addModule(patch.KindFilterPro)},
	{"lfo", Effect, addModule(patch.KindLfo)},
	{"loop", Effect, addModule(patch.KindLoop)},
	{"pitch_shifter", Effect, addModule(patch.KindPitchShifter)},
	{"reverb", Effect, addModule(patch.KindReverb)},
	{"vibrato", Effect, addModule(patch.KindVibrato)},
	{"vocal_filter", Effect, addModule(patch.KindVocalFilter)},
	{"waveshaper", Effect, addModule(patch.KindWaveShaper)},
	{"feedback", Effect, feedback},

	{"bifurcate", Bifurcation, bifurcate},

	{"terminate", Termination, terminate},

	{"reunion_amp", Reunion, reunite(patch.KindAmplifier, "dc_offset")},
	{"modulator", Reunion, reunite(patch.KindModulator)},
}

// MutationNames lists every catalog mutation, sorted.
func MutationNames() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

// Registry is the mutation table of one run.
type Registry struct {
	mutations  []Mutation
	byName     map[string]int
	byCategory [numCategories][]int
}

// NewRegistry binds the catalog to the mutation probabilities in params.
// A probability for a name the catalog does not define is an error.
func NewRegistry(params config.Params) (*Registry, error) {
	r := &Registry{
		mutations: make([]Mutation, len(catalog)),
		byName:    make(map[string]int, len(catalog)),
	}
	for i, e := range catalog {
		r.mutations[i] = Mutation{
			Name:        e.name,
			Category:    e.category,
			Probability: params.MutationProbability(e.name),
			apply:       e.apply,
		}
		r.byName[e.name] = i
		r.byCategory[e.category] = append(r.byCategory[e.category], i)
	}

	unknown := make([]string, 0)
	for name := range params.Mutations {
		if _, ok := r.byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("NewRegistry: %q: %w", unknown, ErrUnknownMutation)
	}

	return r, nil
}

// Len is the number of registered mutations.
func (r *Registry) Len() int { return len(r.mutations) }

// Lookup returns the mutation registered under name.
func (r *Registry) Lookup(name string) (Mutation, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Mutation{}, false
	}
	return r.mutations[i], true
}

// InCategory returns the mutations of c in catalog order.
func (r *Registry) InCategory(c Category) []Mutation {
	if c >= numCategories {
		return nil
	}
	out := make([]Mutation, len(r.byCategory[c]))
	for i, idx := range r.byCategory[c] {
		out[i] = r.mutations[idx]
	}
	return out
}

// Mutations returns every mutation in catalog order.
func (r *Registry) Mutations() []Mutation {
	return append([]Mutation(nil), r.mutations...)
}
