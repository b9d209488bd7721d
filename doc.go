// Package percolyth determines the percolation dimension of each
// connected component of a graph embedded in a periodic 3-D
// crystallographic cell: whether a component is an isolated cluster
// (dim 0), a thread (dim 1), a sheet (dim 2), or a fully 3-D network
// (dim 3).
//
// 🔬 What is percolyth?
//
//	A pure, in-memory percolation-graph engine built from three layers:
//
//	  • lattice   — integer 3-vector algebra and the Gram-determinant
//	                linear-independence oracle
//	  • pgraph    — the translation-labeled multigraph store
//	  • percolate — connected-component decomposition and the
//	                translation-accumulating BFS that computes each
//	                component's percolation dimension, run in parallel
//	                across components
//
// ✨ Why percolyth?
//
//   - No floating point in the core — independence is decided by an
//     integer-exact Gram determinant, never by elimination with a
//     tolerance.
//   - Index-based, not pointer-based — vertices are a dense integer
//     range, matching how an external geometric pre-processor naturally
//     discovers atoms or sites.
//   - Parallel by construction — once components are known, each one's
//     dimension is computed independently with no shared mutable state.
//
// This package is a thin façade over lattice/pgraph/percolate:
//
//	g := pgraph.NewGraph()
//	g.AddEdge(0, 1, lattice.TranslationVector{1, 0, 0})
//	comps, err := percolyth.Analyze(g)
//
// Building the graph itself — from Cartesian atomic positions under a
// triclinic cell — is deliberately out of scope; see package builder for
// the construction-side interface this engine consumes.
package percolyth
