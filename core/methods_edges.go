// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges,
//       plus adjacency views Successors/Predecessors/OutEdges/InEdges.
// Determinism:
//   - Edges(), OutEdges(), InEdges() keep insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates the directed edge from → to and returns its ID.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent (vertices are never auto-created).
//   - ErrLoopNotAllowed if from == to.
//   - ErrMultiEdgeNotAllowed if from → to already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) (string, error) {
	if !g.HasVertex(from) {
		return "", fmt.Errorf("AddEdge(%d→%d): source: %w", from, to, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return "", fmt.Errorf("AddEdge(%d→%d): target: %w", from, to, ErrVertexNotFound)
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := [2]int{from, to}
	if e, ok := g.pair[key]; ok {
		return e.ID, fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	seq, eid := g.nextEdgeID()
	e := &Edge{ID: eid, Seq: seq, From: from, To: to}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	g.pair[key] = e

	return eid, nil
}

// HasEdge reports whether the directed edge from → to exists.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.pair[[2]int{from, to}]
	return ok
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return copyEdges(g.edges)
}

// OutEdges returns the edges leaving id, in insertion order.
// Complexity: O(deg⁺(id))
func (g *Graph) OutEdges(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("OutEdges(%d): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return copyEdges(g.out[id]), nil
}

// InEdges returns the edges entering id, in insertion order.
// Complexity: O(deg⁻(id))
func (g *Graph) InEdges(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("InEdges(%d): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return copyEdges(g.in[id]), nil
}

// Successors returns the targets of id's outgoing edges, in insertion order.
func (g *Graph) Successors(id int) ([]int, error) {
	out, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(out))
	for i, e := range out {
		ids[i] = e.To
	}

	return ids, nil
}

// Predecessors returns the sources of id's incoming edges, in insertion order.
func (g *Graph) Predecessors(id int) ([]int, error) {
	in, err := g.InEdges(id)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(in))
	for i, e := range in {
		ids[i] = e.From
	}

	return ids, nil
}

// nextEdgeID advances the counter. Caller holds muEdgeAdj.
func (g *Graph) nextEdgeID() (uint64, string) {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return g.edgeSeq, string(buf)
}

func copyEdges(src []*Edge) []Edge {
	out := make([]Edge, len(src))
	for i, e := range src {
		out[i] = *e
	}

	return out
}
