// Package dfs: back-edge cycle detection.
//
// A deterministic DFS forest is built (roots ascending, successors in edge
// insertion order). Every edge that reaches a Gray vertex closes exactly one
// cycle: the stack segment from that vertex to the current one.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V)
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/kipple/core"
)

type cycleFinder struct {
	graph  *core.Graph
	state  map[int]int
	path   []int
	back   []core.Edge
	cycles [][]int
}

// DetectCycles reports whether g has a cycle and lists the cycles closed by
// back-edges. Each cycle is closed ([v0, ..., v0]) and rotated so v0 is its
// smallest vertex; the list is sorted lexicographically.
// A nil graph is treated as acyclic.
func DetectCycles(g *core.Graph) (bool, [][]int, error) {
	if g == nil {
		return false, nil, nil
	}
	f, err := walk(g)
	if err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, func(a, b []int) int { return slices.Compare(a, b) })

	return true, f.cycles, nil
}

// BackEdges returns the edges that close a cycle, in discovery order.
func BackEdges(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	f, err := walk(g)
	if err != nil {
		return nil, fmt.Errorf("dfs: BackEdges: %w", err)
	}

	return f.back, nil
}

func walk(g *core.Graph) (*cycleFinder, error) {
	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[int]int, len(verts)),
		path:  make([]int, 0, len(verts)),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

func (f *cycleFinder) visit(id int) error {
	f.state[id] = Gray
	f.path = append(f.path, id)

	out, err := f.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("OutEdges(%d): %w", id, err)
	}
	for _, e := range out {
		switch f.state[e.To] {
		case White:
			if err = f.visit(e.To); err != nil {
				return err
			}
		case Gray:
			f.back = append(f.back, e)
			f.record(e.To)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record extracts the stack segment starting at start and stores it canonically.
func (f *cycleFinder) record(start int) {
	idx := slices.Index(f.path, start)
	f.cycles = append(f.cycles, canonical(f.path[idx:]))
}

// canonical rotates base so its smallest vertex is first, then closes it.
func canonical(base []int) []int {
	minAt := 0
	for i, v := range base {
		if v < base[minAt] {
			minAt = i
		}
	}
	out := make([]int, 0, len(base)+1)
	out = append(out, base[minAt:]...)
	out = append(out, base[:minAt]...)

	return append(out, out[0])
}
