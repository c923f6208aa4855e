// Package dfs: topological ordering.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// followed edge u→v, u appears before v.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/kipple/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[int]int
	order []int
}

// TopologicalSort returns a topological ordering of all vertices of g.
// Roots are tried in ascending vertex order and successors in edge insertion
// order, so the result is deterministic.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[int]int, len(verts)),
		order: make([]int, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	t.state[id] = Gray
	next, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("dfs: TopologicalSort: %w", err)
	}
	for _, nbr := range next {
		switch t.state[nbr] {
		case White:
			if err = t.visit(nbr); err != nil {
				return err
			}
		case Gray:
			if !t.opts.ignoreBackEdges {
				return fmt.Errorf("dfs: TopologicalSort: edge %d→%d: %w", id, nbr, ErrCycleDetected)
			}
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
