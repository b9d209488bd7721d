// Package pgraph implements the percolation graph store: a vertex-indexed
// multigraph whose edges carry lattice.TranslationVector labels.
//
// PercolationGraph is deliberately index-based rather than map-based —
// vertices are identified by a dense, monotonically growing integer
// range, matching the dense vertex/edge slices of the specification it
// implements. Growth is lazy: ReserveVertices, AddVertex, and AddEdge all
// extend capacity on demand, so callers may discover the vertex set in
// any order while building the graph (typically by streaming bonds from
// an external geometric pre-processor; see package builder).
//
// Every AddEdge call inserts both the edge and its translation-negated
// inverse, including for self-loops: a self-loop with a non-zero
// translation is a first-class cycle generator, not degenerate input.
// Multi-edges (duplicate or distinct translations between the same pair)
// are preserved rather than coalesced, because distinct translations
// between the same endpoints encode independent cycles.
//
// PercolationGraph carries no algorithm; it is a pure data structure.
// Component decomposition and percolation-dimension analysis live in
// package percolate.
package pgraph
