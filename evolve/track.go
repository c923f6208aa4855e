// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// track.go - Track arena: growth lanes over the shared patch.
//
// Contract:
//   - Tracks live in a flat arena and refer to their ancestor by TrackID.
//   - A track owns the modules appended to it; until its first append its tail
//     is its ancestor's tail.
//   - A descendant forks at its ancestor's tail as of Spawn; later growth of
//     the ancestor stays out of its lineage.
//   - The first append of a descendant wires the fork tail into the module
//     and finishes the ancestor.
//   - Finish is monotonic. Finished tracks still accept appended modules.
//   - Every track draws from its own stream, derived when it is spawned.

package evolve

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
)

// TrackID addresses a Track within its Arena.
type TrackID int

// NoTrack is the ancestor of the root track.
const NoTrack TrackID = -1

// Arena owns every Track of one generation run.
type Arena struct {
	patch  *patch.Patch
	rngs   *rng.Manager
	log    zerolog.Logger
	tracks []*Track
}

// NewArena returns an empty arena over p. Track streams are derived from rngs.
func NewArena(p *patch.Patch, rngs *rng.Manager) *Arena {
	return &Arena{patch: p, rngs: rngs, log: zerolog.Nop()}
}

// Spawn creates a track descending from ancestor (NoTrack for a root),
// forking at the ancestor's current tail, and derives its stream.
func (a *Arena) Spawn(ancestor TrackID) (*Track, error) {
	fork := 0
	if ancestor != NoTrack {
		up, err := a.Track(ancestor)
		if err != nil {
			return nil, fmt.Errorf("Spawn: %w", err)
		}
		fork = len(up.mods)
	}
	t := &Track{
		id:       TrackID(len(a.tracks)),
		arena:    a,
		ancestor: ancestor,
		fork:     fork,
		rng:      a.rngs.Derive(),
	}
	a.tracks = append(a.tracks, t)
	a.log.Trace().Int("track", int(t.id)).Int("ancestor", int(ancestor)).Msg("spawn")

	return t, nil
}

// Track returns the track with the given ID.
func (a *Arena) Track(id TrackID) (*Track, error) {
	if id < 0 || int(id) >= len(a.tracks) {
		return nil, fmt.Errorf("track %d: %w", id, ErrTrackNotFound)
	}
	return a.tracks[id], nil
}

// Len is the number of tracks.
func (a *Arena) Len() int { return len(a.tracks) }

// Tracks returns the tracks in spawn order.
func (a *Arena) Tracks() []*Track {
	return append([]*Track(nil), a.tracks...)
}

// Eligible returns, in spawn order, the tracks whose supported set has c.
func (a *Arena) Eligible(c Category) []*Track {
	var out []*Track
	for _, t := range a.tracks {
		if t.SupportedMutations().Has(c) {
			out = append(out, t)
		}
	}
	return out
}

// Track is one growth lane.
type Track struct {
	id       TrackID
	arena    *Arena
	ancestor TrackID
	fork     int // ancestor's module count at Spawn
	mods     []patch.ModuleID
	finished bool
	rng      *rng.Stream
}

// ID returns the arena index of t.
func (t *Track) ID() TrackID { return t.id }

// Ancestor returns the parent track, or NoTrack.
func (t *Track) Ancestor() TrackID { return t.ancestor }

// Mods returns a copy of the modules appended to t, oldest first.
func (t *Track) Mods() []patch.ModuleID {
	return append([]patch.ModuleID(nil), t.mods...)
}

// Finished reports whether t has been finished.
func (t *Track) Finished() bool { return t.finished }

// Finish marks t finished. It cannot be undone.
func (t *Track) Finish() {
	if t.finished {
		return
	}
	t.finished = true
	t.arena.log.Debug().Int("track", int(t.id)).Int("mods", len(t.mods)).Msg("track finished")
}

// Random is the track's private stream.
func (t *Track) Random() *rng.Stream { return t.rng }

// Lineage yields the modules leading to t's tail, tail first: t's own modules
// newest first, then the ancestor's modules up to the fork point, and so on up
// to the root.
func (t *Track) Lineage() iter.Seq[patch.ModuleID] {
	return t.arena.lineage(t, len(t.mods))
}

// lineage walks cur's first limit modules newest first, then up the forks.
func (a *Arena) lineage(from *Track, n int) iter.Seq[patch.ModuleID] {
	return func(yield func(patch.ModuleID) bool) {
		cur, limit := from, n
		for {
			for i := limit - 1; i >= 0; i-- {
				if !yield(cur.mods[i]) {
					return
				}
			}
			if cur.ancestor == NoTrack {
				return
			}
			limit = cur.fork
			cur = a.tracks[cur.ancestor]
		}
	}
}

// Fork returns the ancestor module t branched off. The root has none.
func (t *Track) Fork() (patch.ModuleID, bool) {
	if t.ancestor == NoTrack {
		return 0, false
	}
	for m := range t.arena.lineage(t.arena.tracks[t.ancestor], t.fork) {
		return m, true
	}
	return 0, false
}

// Previous yields Lineage without the tail. Each call starts over.
func (t *Track) Previous() iter.Seq[patch.ModuleID] {
	return func(yield func(patch.ModuleID) bool) {
		first := true
		for m := range t.Lineage() {
			if first {
				first = false
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Tail returns the module new modules attach after.
func (t *Track) Tail() (patch.ModuleID, bool) {
	for m := range t.Lineage() {
		return m, true
	}
	return 0, false
}

// Behaviors returns the capability set of the tail, or the empty set.
func (t *Track) Behaviors() patch.BehaviorSet {
	tail, ok := t.Tail()
	if !ok {
		return 0
	}
	return t.arena.patch.Behaviors(tail)
}

// SupportedMutations derives the categories t can act in from its tail and
// finished state. It is computed on every call.
func (t *Track) SupportedMutations() CategorySet {
	_, hasTail := t.Tail()
	return eligibility(t.Behaviors(), t.finished, hasTail)
}

// eligibility:
//
//	tail sends audio  → effect, and reunion while not finished
//	tail sends notes  → synth
//	not finished      → bifurcation, termination
//	no tail           → nothing
func eligibility(b patch.BehaviorSet, finished, hasTail bool) CategorySet {
	var s CategorySet
	if !hasTail {
		return s
	}
	if b.Has(patch.SendsAudio) {
		s = s.Add(Effect)
		if !finished {
			s = s.Add(Reunion)
		}
	}
	if b.Has(patch.SendsNotes) {
		s = s.Add(Synth)
	}
	if !finished {
		s = s.Add(Bifurcation).Add(Termination)
	}
	return s
}

// Append adds m to t. On the first append of a descendant track the
// fork tail is connected to m and the ancestor is finished.
func (t *Track) Append(m patch.ModuleID) error {
	if len(t.mods) == 0 && t.ancestor != NoTrack {
		if tail, ok := t.Tail(); ok {
			if err := t.arena.patch.Connect(tail, m); err != nil {
				return fmt.Errorf("Append(%d): track %d: %w", m, t.id, err)
			}
		}
		t.arena.tracks[t.ancestor].Finish()
	}
	t.mods = append(t.mods, m)

	return nil
}
