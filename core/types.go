// SPDX-License-Identifier: MIT
// Package: kipple/core
//
// types.go - Edge, Graph and sentinel errors.
//
// Errors:
//
//	ErrVertexExists        - AddVertex with an ID already present.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - a second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates AddVertex was called with a taken ID.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed link From → To.
type Edge struct {
	// ID is the textual identifier ("e1", "e2", ...).
	ID string

	// Seq is the insertion sequence number (1-based); Edges() is ordered by it.
	Seq uint64

	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int
}

// Graph is a directed graph with insertion-ordered edges.
//
// muVert protects vertices; muEdgeAdj protects the edge catalog and both
// adjacency indexes. Parallel edges and self-loops are never stored.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, out, in, pair

	edgeSeq  uint64
	vertices map[int]struct{}
	edges    []*Edge          // insertion order
	out      map[int][]*Edge  // from → edges, insertion order
	in       map[int][]*Edge  // to → edges, insertion order
	pair     map[[2]int]*Edge // (from,to) → edge
}

// NewGraph creates an empty directed Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	g := &Graph{
		vertices: make(map[int]struct{}),
		out:      make(map[int][]*Edge),
		in:       make(map[int][]*Edge),
		pair:     make(map[[2]int]*Edge),
	}

	return g
}
