// SPDX-License-Identifier: MIT
// Package: kipple/evolve
//
// errors.go - sentinel errors for the evolve package.
//
// Callers branch with errors.Is; implementations wrap with %w and add the
// method or mutation name as context.

package evolve

import "errors"

// ErrUnknownMutation indicates a mutation name in the parameters that the
// catalog does not define. Reported by NewRegistry and New, before any growth.
var ErrUnknownMutation = errors.New("evolve: unknown mutation")

// ErrGrowthStalled indicates the iteration ceiling set by WithMaxIterations
// was reached before the module target.
var ErrGrowthStalled = errors.New("evolve: growth stalled")

// ErrTrackNotFound indicates a TrackID outside the arena.
var ErrTrackNotFound = errors.New("evolve: track not found")

// ErrEmptyTrack indicates a module mutation applied to a track with no tail.
var ErrEmptyTrack = errors.New("evolve: track has no tail")
