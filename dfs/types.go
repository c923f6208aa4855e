// Package dfs defines visitation states, sentinel errors and options for the
// depth-first analyses.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a cycle was encountered during a strict TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx             context.Context
	ignoreBackEdges bool
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithIgnoreBackEdges makes TopologicalSort skip back-edges instead of failing,
// ordering only the feed-forward part of a cyclic graph.
func WithIgnoreBackEdges() TopoOption {
	return func(o *topoOptions) {
		o.ignoreBackEdges = true
	}
}
