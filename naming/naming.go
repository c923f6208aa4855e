// SPDX-License-Identifier: MIT
// Package: kipple/naming
//
// naming.go - unique pronounceable identifiers drawn from the grammar.
//
// Contract:
//   - Next picks one Structure, then composes candidates (one fragment per
//     category slot) until a candidate has not been produced before.
//   - Attempts are bounded (WithMaxAttempts); running out is ErrExhausted and is
//     fatal for the caller.
//   - Every draw comes from the single stream handed to New.

package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kipple/rng"
)

// DefaultMaxAttempts bounds the uniqueness retries of one Next call.
const DefaultMaxAttempts = 1000

// ErrExhausted indicates no unused name was found within the attempt budget.
var ErrExhausted = errors.New("naming: name space exhausted")

// Option customizes a Generator.
type Option func(*Generator)

// WithMaxAttempts bounds the retries of one Next call. Panics on n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("naming: WithMaxAttempts(n<1)")
	}
	return func(g *Generator) { g.maxAttempts = n }
}

// WithStructures replaces the template set. Panics on an empty set.
func WithStructures(set ...Structure) Option {
	if len(set) == 0 {
		panic("naming: WithStructures()")
	}
	return func(g *Generator) { g.structures = set }
}

// Generator produces names that are unique for its lifetime.
type Generator struct {
	stream      *rng.Stream
	structures  []Structure
	maxAttempts int
	used        map[string]struct{}
}

// New returns a Generator consuming stream.
func New(stream *rng.Stream, opts ...Option) *Generator {
	g := &Generator{
		stream:      stream,
		structures:  Structures,
		maxAttempts: DefaultMaxAttempts,
		used:        make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Next returns a name never returned before by this Generator.
func (g *Generator) Next() (string, error) {
	st := g.structures[g.stream.Intn(len(g.structures))]
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		name := g.compose(st)
		if _, dup := g.used[name]; dup {
			continue
		}
		g.used[name] = struct{}{}

		return name, nil
	}

	return "", fmt.Errorf("Next: %d attempts after %d names: %w", g.maxAttempts, len(g.used), ErrExhausted)
}

// Seen reports whether name has already been produced.
func (g *Generator) Seen(name string) bool {
	_, ok := g.used[name]
	return ok
}

// Used returns how many names have been produced.
func (g *Generator) Used() int { return len(g.used) }

func (g *Generator) compose(st Structure) string {
	var b strings.Builder
	for _, slot := range st {
		if slot.Literal != "" {
			b.WriteString(slot.Literal)
			continue
		}
		table := fragments[slot.Fragment]
		b.WriteString(table[g.stream.Intn(len(table))])
	}

	return b.String()
}
