package pgraph

import (
	"sync"

	"github.com/katalvlaran/percolyth/lattice"
)

// VertexData is the metadata record attached to a vertex. Index is the
// only field the engine itself reads or writes; Attr is opaque payload
// carried on behalf of the caller (e.g. the original atom/site record
// from an external geometric pre-processor) and is never inspected by
// this package or by package percolate.
type VertexData struct {
	// Index is the non-negative integer identifying this vertex. It is
	// always forced to match the vertex's slot after any growth
	// operation, even if the caller supplied a stale value.
	Index int

	// Attr is caller-owned opaque payload.
	Attr any
}

// EdgeData wraps the translation label carried by an edge.
type EdgeData struct {
	Translation lattice.TranslationVector
}

// Inverse returns an EdgeData whose translation is negated — the label
// seen from the opposite endpoint of the same edge.
func (e EdgeData) Inverse() EdgeData {
	return EdgeData{Translation: e.Translation.Neg()}
}

// Incidence is one entry of a vertex's adjacency list: a neighboring
// vertex id paired with the EdgeData of the edge connecting them, as
// seen from this vertex.
type Incidence struct {
	Neighbor int
	Edge     EdgeData
}

// GraphOption configures a PercolationGraph at construction time.
type GraphOption func(*PercolationGraph)

// WithMaxVertices caps the number of vertices the graph will ever grow
// to hold, so the highest valid index is n-1. Growth operations
// (ReserveVertices, AddVertex, AddEdge) that would require a vertex index
// of n or above return ErrVertexCapExceeded instead of growing. The default, with no option
// supplied, is unbounded growth — matching the specification's "never
// fails in memory-available conditions" contract. Use this option when
// graph construction is driven by untrusted or unchecked input and an
// astronomical index would otherwise force an equally astronomical
// allocation.
func WithMaxVertices(n int) GraphOption {
	return func(g *PercolationGraph) {
		limit := n
		g.maxVertices = &limit
	}
}

// PercolationGraph is the mutable percolation-graph store: a dense,
// index-addressed sequence of vertices, each paired with its ordered
// multiset of incidences.
//
// len(vertices) == len(edges) holds at every observable point. A fresh
// slot created by growth always has VertexData.Index equal to its own
// position.
type PercolationGraph struct {
	mu sync.RWMutex

	maxVertices *int // nil: unbounded

	vertices []VertexData
	edges    [][]Incidence
}

// NewGraph constructs an empty PercolationGraph, applying any supplied
// options.
func NewGraph(opts ...GraphOption) *PercolationGraph {
	g := &PercolationGraph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
