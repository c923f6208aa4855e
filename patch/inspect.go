// SPDX-License-Identifier: MIT
// Package: kipple/patch
//
// inspect.go - read-only graph analyses of a Patch.

package patch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kipple/bfs"
	"github.com/katalvlaran/kipple/dfs"
)

// FeedbackLoops lists the cycles of the patch, each closed and starting at its
// lowest module ID. Only feedback mutations create cycles.
func (p *Patch) FeedbackLoops() ([][]ModuleID, error) {
	_, cycles, err := dfs.DetectCycles(p.graph)
	if err != nil {
		return nil, err
	}
	out := make([][]ModuleID, len(cycles))
	for i, c := range cycles {
		out[i] = toModuleIDs(c)
	}
	return out, nil
}

// FeedbackEdges lists the connection that closes each feedback loop, in
// discovery order.
func (p *Patch) FeedbackEdges() ([]Connection, error) {
	back, err := dfs.BackEdges(p.graph)
	if err != nil {
		return nil, err
	}
	out := make([]Connection, len(back))
	for i, e := range back {
		out[i] = Connection{From: ModuleID(e.From), To: ModuleID(e.To)}
	}
	return out, nil
}

// Order returns a topological order of the feed-forward part of the patch
// (feedback edges dropped).
func (p *Patch) Order() ([]ModuleID, error) {
	order, err := dfs.TopologicalSort(p.graph, dfs.WithIgnoreBackEdges())
	if err != nil {
		return nil, err
	}
	return toModuleIDs(order), nil
}

// Depths returns the hop distance of every module reachable from the note input.
func (p *Patch) Depths() (map[ModuleID]int, error) {
	res, err := bfs.BFS(p.graph, int(NoteInID))
	if err != nil {
		return nil, err
	}
	out := make(map[ModuleID]int, len(res.Depth))
	for id, d := range res.Depth {
		out[ModuleID(id)] = d
	}
	return out, nil
}

// SignalPath returns a shortest chain of modules from the note input to id.
// It fails with ErrNoSignalPath when id is not fed by the note input.
func (p *Patch) SignalPath(id ModuleID) ([]ModuleID, error) {
	if !p.has(id) {
		return nil, fmt.Errorf("SignalPath(%d): %w", id, ErrModuleNotFound)
	}
	res, err := bfs.BFS(p.graph, int(NoteInID))
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(int(id))
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("SignalPath(%d): %w", id, ErrNoSignalPath)
	}
	if err != nil {
		return nil, err
	}
	return toModuleIDs(path), nil
}
