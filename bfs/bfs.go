// Package bfs provides breadth-first search over a directed core.Graph,
// returning hop distances, parent links and visit order.
//
// Successors are expanded in edge insertion order, so results are deterministic.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/kipple/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g from startID following edge direction.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS(g *core.Graph, startID int) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("BFS(%d): %w", startID, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, id)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		succ, err := w.graph.Successors(id)
		if err != nil {
			return fmt.Errorf("bfs: successors of %d: %w", id, err)
		}
		next := w.res.Depth[id] + 1
		for _, nbr := range succ {
			if w.res.Reached(nbr) {
				continue
			}
			w.res.Parent[nbr] = id
			w.enqueue(nbr, next)
		}
	}

	return nil
}
