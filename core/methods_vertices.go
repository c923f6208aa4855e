// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muVert write lock, queries under muVert read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// Returns ErrVertexExists if the ID is taken.
// Complexity: O(1)
func (g *Graph) AddVertex(id int) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrVertexExists)
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is present.
// Complexity: O(1)
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
