// Package bfs provides breadth-first search over a directed core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex,
//     following edges forward only.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - PathTo rebuilds the shortest hop path to any reached vertex.
//
// Determinism
//
//	Successors are expanded in edge insertion order, so the visit sequence is
//	fully reproducible for a given construction order.
//
// Complexity
//
//	Time O(V + E), Memory O(V).
package bfs
