// SPDX-License-Identifier: MIT

// Package core provides the thread-safe directed graph that stores a patch's
// module connections.
//
// Vertices carry caller-assigned integer IDs (module IDs); edges are directed
// links From → To with textual IDs "e1", "e2", ... assigned in insertion order.
//
// Properties:
//
//   - Directed only. An edge u→v never implies v→u.
//   - No parallel edges: a second AddEdge(u, v) returns ErrMultiEdgeNotAllowed
//     together with the existing edge ID, which lets callers treat the
//     operation as idempotent.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - Vertices are never created implicitly; AddEdge on an unknown endpoint
//     returns ErrVertexNotFound.
//   - Deterministic iteration: Vertices() is sorted ascending; Edges(),
//     OutEdges(), InEdges(), Successors() and Predecessors() keep insertion order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj).
//
// Core Methods:
//
//	NewGraph() *Graph
//	AddVertex(id int) error                          // O(1)
//	AddEdge(from, to int) (edgeID string, err error) // O(1)†
//	HasVertex / HasEdge                              // O(1)
//	Vertices() []int                                 // O(V log V)
//	Edges() []Edge                                   // O(E)
//	OutEdges / InEdges / Successors / Predecessors   // O(deg)
//
// † amortized.
package core
