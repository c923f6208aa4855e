// Package bfs provides the result type and error definitions
// for breadth-first search over a directed core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in edges from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id int) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
