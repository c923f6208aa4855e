// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// mutations.go - catalog behaviors.
//
// All draws made while applying a mutation come from the acting track's own
// stream; child tracks get fresh streams from the manager.

package evolve

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
)

// addModule returns a mutation that extends the track with one module of kind.
func addModule(kind string, skip ...string) applyFunc {
	return func(r *run, t *Track) (bool, error) {
		if _, err := r.extend(t, kind, skip...); err != nil {
			return false, err
		}
		return true, nil
	}
}

// extend creates a randomized module of kind after t's tail and appends it.
func (r *run) extend(t *Track, kind string, skip ...string) (patch.ModuleID, error) {
	tail, ok := t.Tail()
	if !ok {
		return 0, fmt.Errorf("%s: track %d: %w", kind, t.ID(), ErrEmptyTrack)
	}
	id, err := r.create(t, kind, skip...)
	if err != nil {
		return 0, err
	}
	if err = r.patch.Connect(tail, id); err != nil {
		return 0, fmt.Errorf("%s: %w", kind, err)
	}
	if err = t.Append(id); err != nil {
		return 0, err
	}

	return id, nil
}

// create instantiates kind and randomizes its controllers with t's stream.
func (r *run) create(t *Track, kind string, skip ...string) (patch.ModuleID, error) {
	id, err := r.patch.CreateModule(kind)
	if err != nil {
		return 0, err
	}
	if err = randomizeControllers(r.patch, id, t.Random(), skip...); err != nil {
		return 0, err
	}
	return id, nil
}

// feedback routes the tail through two Feedback modules back into an
// earlier module of the lineage. The Feedback modules are not appended.
func feedback(r *run, t *Track) (bool, error) {
	history := slices.Collect(t.Previous())
	dest, ok := rng.Pick(t.Random(), history)
	if !ok {
		return false, nil
	}
	tail, _ := t.Tail()

	fb1, err := r.create(t, patch.KindFeedback)
	if err != nil {
		return false, err
	}
	fb2, err := r.create(t, patch.KindFeedback)
	if err != nil {
		return false, err
	}
	for _, c := range []patch.Connection{{From: tail, To: fb1}, {From: fb1, To: fb2}, {From: fb2, To: dest}} {
		if err = r.patch.Connect(c.From, c.To); err != nil {
			return false, fmt.Errorf("feedback: %w", err)
		}
	}
	r.log.Trace().Int("track", int(t.ID())).Int("from", int(tail)).Int("to", int(dest)).Msg("feedback loop")

	return true, nil
}

// bifurcate draws a branch count n in [2, max] and spawns n-1 children.
func bifurcate(r *run, t *Track) (bool, error) {
	n := t.Random().IntRange(2, r.params.MaxBifurcations)
	for i := 2; i <= n; i++ {
		if _, err := r.arena.Spawn(t.ID()); err != nil {
			return false, err
		}
	}
	r.log.Trace().Int("track", int(t.ID())).Int("children", n-1).Msg("bifurcate")

	return true, nil
}

func terminate(_ *run, t *Track) (bool, error) {
	t.Finish()
	return true, nil
}

// reunite returns a mutation that merges another open track into this one
// through a new module of kind.
func reunite(kind string, skip ...string) applyFunc {
	return func(r *run, t *Track) (bool, error) {
		var partners []*Track
		for _, o := range r.arena.Eligible(Reunion) {
			if o.ID() != t.ID() {
				partners = append(partners, o)
			}
		}
		partner, ok := rng.Pick(t.Random(), partners)
		if !ok {
			return false, nil
		}
		// Read before extend: a partner that inherits t's tail would
		// otherwise resolve to the new module itself.
		from, _ := partner.Tail()

		id, err := r.extend(t, kind, skip...)
		if err != nil {
			return false, err
		}
		if err = r.patch.Connect(from, id); err != nil {
			return false, fmt.Errorf("%s: reunion: %w", kind, err)
		}
		r.log.Trace().Int("track", int(t.ID())).Int("partner", int(partner.ID())).Msg("reunion")

		return true, nil
	}
}
