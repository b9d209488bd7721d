// Package percolate runs the two-pass analysis that gives this module its
// name: for each connected component of a pgraph.PercolationGraph, it
// determines the percolation dimension — the rank, over ℚ, of the
// sublattice of ℤ³ generated by the translations of closed walks in that
// component.
//
// Pass one (Components) is an untagged breadth-first search that
// partitions the vertex set into connected components, run sequentially
// in ascending vertex-id order for determinism. Pass two (AnalyzeAll) is
// embarrassingly parallel across components: it seeds a
// translation-accumulating BFS from each component's root and feeds
// every closed-walk translation it discovers to lattice.Independent
// until the basis reaches rank 3 or the frontier empties.
//
// Both passes are pure: they read a *pgraph.PercolationGraph and never
// mutate it, so a single graph may be analyzed repeatedly or from
// multiple goroutines.
package percolate
