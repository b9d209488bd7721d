// Package builder defines the construction-side boundary the percolation
// engine consumes, plus a small set of deterministic topology generators
// used to build periodic test fixtures without a real geometric
// pre-processor.
//
// This package deliberately does not do the following (quoting the
// boundary this engine was designed against):
//
//	"Coordinate-space construction of the graph from atomic positions in
//	a triclinic basis (a thin pre-processor that maps Cartesian positions
//	to normalized fractional coordinates and emits translation labels)."
//	"Any CLI, file I/O, random-input demo harness, and C-ABI wrapper
//	exposing opaque handles."
//
// GraphBuilder is the interface such an external pre-processor would
// implement against: set how many vertices exist, attach metadata to
// each, declare edges with their inter-cell translation, and hand back a
// finished *pgraph.PercolationGraph. New returns the reference
// accumulator, a thin in-memory implementation with no geometry at all —
// callers decide what u, v, and t mean.
//
// The Constructor factories (Chain, Ring, Grid, Complete) adapt that
// interface into small, deterministic fixtures: a Chain strung out along
// one axis, a Ring that closes with a single cell translation, a Grid
// woven into a 2-D torus, and a Complete graph with every edge
// confined to one cell. They exist for tests and examples, not for
// production geometry.
package builder
