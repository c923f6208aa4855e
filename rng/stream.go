// SPDX-License-Identifier: MIT
// Package: kipple/rng
//
// stream.go - draw helpers over one seeded source.

package rng

import (
	"math/rand"
)

// GateMax is the inclusive upper bound of a probability gate draw.
const GateMax = 100

// Stream is one independent pseudo-random sequence. It has no Seed method:
// once created, a stream can only be consumed.
type Stream struct {
	r *rand.Rand
}

// Intn returns a uniform int in [0, n). Panics if n <= 0, like math/rand.
func (s *Stream) Intn(n int) int {
	return s.r.Intn(n)
}

// IntRange returns a uniform int in [lo, hi], both ends inclusive.
// A reversed range is treated as the single value lo.
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.r.Intn(hi-lo+1)
}

// Bool returns a uniform boolean.
func (s *Stream) Bool() bool {
	return s.r.Intn(2) == 1
}

// Gate draws from [0, GateMax] and passes when the draw is <= p.
// A probability of 0 therefore still passes one time in 101.
func (s *Stream) Gate(p int) bool {
	return s.IntRange(0, GateMax) <= p
}

// Shuffle permutes n elements in place through swap (Fisher–Yates).
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Pick returns a uniform element of items. ok is false for an empty slice
// and no draw is made in that case.
func Pick[T any](s *Stream, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}

	return items[s.Intn(len(items))], true
}
