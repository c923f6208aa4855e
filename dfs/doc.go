// Package dfs implements depth-first analyses of a directed core.Graph:
// feedback-cycle detection and topological ordering.
//
// What:
//
//   - DetectCycles: reports the cycles closed by back-edges of a
//     deterministic DFS forest (roots in ascending vertex order, successors in
//     edge insertion order), using White/Gray/Black marking. Each cycle is
//     rotated so its smallest vertex comes first and is returned closed
//     ([v0, v1, ..., v0]).
//   - BackEdges: the edges that close those cycles.
//   - TopologicalSort: reverse post-order of the same forest. A cycle yields
//     ErrCycleDetected unless WithIgnoreBackEdges() is set, in which case
//     back-edges are dropped and the feed-forward part is ordered.
//
// Complexity:
//
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle found during a strict TopologicalSort
//   - context.Canceled  sort canceled via WithCancelContext
package dfs
