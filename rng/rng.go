// SPDX-License-Identifier: MIT
// Package: kipple/rng
//
// rng.go - master seed → independent, never re-seeded random streams.
//
// Derivation contract:
//   - One master *rand.Rand is seeded from the caller's seed.
//   - Every stream (fixed or per-track) is seeded by one IntRange(0, MaxSeed) draw
//     from the master; the master is used for nothing else.
//   - Fixed streams are derived eagerly in New, in this order:
//     mutations, names, tracks.
//   - Derive() hands out further streams in call order.
//
// Determinism:
//   - Same seed + same sequence of Derive() calls ⇒ bit-identical draws on every stream.

package rng

import (
	"math/rand"
)

// MaxSeed is the inclusive upper bound of every derived seed (and of the user seed).
const MaxSeed = 1 << 30

// Manager owns the master stream and the fixed streams derived from it.
type Manager struct {
	seed    int64
	master  *rand.Rand
	derived int

	mutations *Stream
	names     *Stream
	tracks    *Stream
}

// New seeds the master stream and derives the fixed streams.
// Complexity: O(1).
func New(seed int64) *Manager {
	m := &Manager{
		seed:   seed,
		master: rand.New(rand.NewSource(seed)),
	}
	// Order matters: it fixes which master draw seeds which stream.
	m.mutations = m.Derive()
	m.names = m.Derive()
	m.tracks = m.Derive()

	return m
}

// Seed returns the seed the manager was created with.
func (m *Manager) Seed() int64 { return m.seed }

// Mutations is the stream driving category/mutation selection and probability gates.
func (m *Manager) Mutations() *Stream { return m.mutations }

// Names is the stream owned by the naming generator and the control-surface shuffle.
func (m *Manager) Names() *Stream { return m.names }

// Tracks is the stream used to assign a mutation to one of the eligible tracks.
func (m *Manager) Tracks() *Stream { return m.tracks }

// Derived reports how many streams have been handed out, fixed streams included.
func (m *Manager) Derived() int { return m.derived }

// Derive draws one seed from the master stream and returns a fresh stream seeded with it.
// Complexity: O(1).
func (m *Manager) Derive() *Stream {
	seed := int64(m.master.Intn(MaxSeed + 1))
	m.derived++

	return &Stream{r: rand.New(rand.NewSource(seed))}
}
