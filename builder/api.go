// SPDX-License-Identifier: MIT
package builder

import (
	"github.com/katalvlaran/percolyth/lattice"
	"github.com/katalvlaran/percolyth/pgraph"
)

// GraphBuilder is the interface an external geometric pre-processor
// implements to hand vertices and translation-labeled edges to the
// percolation engine. Implementations do not need to be safe for
// concurrent use; construction is expected to run single-threaded ahead
// of percolate.AnalyzeAll.
type GraphBuilder interface {
	// SetVertexCount reserves capacity for n vertices (indices 0..n-1).
	// Calling it more than once with a smaller n is a no-op, matching
	// pgraph.PercolationGraph.ReserveVertices.
	SetVertexCount(n int)

	// SetVertexData attaches metadata to vertex i, growing the graph if
	// necessary. data.Index is overwritten with i.
	SetVertexData(i int, data pgraph.VertexData)

	// AddEdge declares an undirected edge between u and v labeled with
	// translation t. The inverse incidence is recorded automatically.
	AddEdge(u, v int, t lattice.TranslationVector)

	// Build returns the accumulated graph. Implementations may return
	// the same graph on repeated calls; the reference implementation
	// does.
	Build() *pgraph.PercolationGraph
}

// accumulator is the reference GraphBuilder: a thin wrapper over
// pgraph.PercolationGraph that swallows per-call errors rather than
// surfacing them, since a builder driven by trusted geometric input has
// no programmer-facing reason to fail on a non-negative index.
// Callers who need error visibility should drive a *pgraph.PercolationGraph
// directly instead of going through GraphBuilder.
type accumulator struct {
	g *pgraph.PercolationGraph
}

// New returns the reference in-memory GraphBuilder implementation: an
// accumulator with no geometry, no units, and no knowledge of a
// crystallographic cell. It exists so callers can exercise the
// construction-side interface without writing a real pre-processor.
func New(opts ...pgraph.GraphOption) GraphBuilder {
	return &accumulator{g: pgraph.NewGraph(opts...)}
}

func (a *accumulator) SetVertexCount(n int) {
	if n <= 0 {
		return
	}
	_ = a.g.ReserveVertices(n - 1)
}

func (a *accumulator) SetVertexData(i int, data pgraph.VertexData) {
	_ = a.g.AddVertex(i, data)
}

func (a *accumulator) AddEdge(u, v int, t lattice.TranslationVector) {
	_ = a.g.AddEdge(u, v, t)
}

func (a *accumulator) Build() *pgraph.PercolationGraph {
	return a.g
}
