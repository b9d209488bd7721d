// SPDX-License-Identifier: MIT
//
// topology.go — deterministic periodic-graph fixtures over GraphBuilder.
//
// Each factory returns a Constructor that drives a GraphBuilder the way a
// real geometric pre-processor would: reserve vertices, then declare
// edges with their inter-cell translation. None of these interpret a
// crystallographic cell; axis and step are caller-supplied integers, not
// coordinates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/percolyth/lattice"
)

const (
	methodChain    = "Chain"
	methodRing     = "Ring"
	methodGrid     = "Grid"
	methodComplete = "Complete"

	minChainNodes = 1
	minRingNodes  = 3
	minGridDim    = 1
)

// Constructor applies a deterministic sequence of GraphBuilder calls.
// Constructors validate parameters early and return sentinel errors; they
// never panic.
type Constructor func(b GraphBuilder) error

// axisVector returns the unit TranslationVector along axis (0=x, 1=y,
// 2=z), scaled by step. Any other axis value, negative included, is
// reduced modulo lattice.Dim onto one of the three.
func axisVector(axis int, step int64) lattice.TranslationVector {
	var v lattice.TranslationVector
	a := axis % lattice.Dim
	if a < 0 {
		a += lattice.Dim
	}
	v[a] = step
	return v
}

// Chain builds an open path of n vertices (0..n-1) with purely
// intra-cell edges (zero translation). A Chain never percolates: every
// closed walk sums back to zero, so its component's dimension is 0.
func Chain(n int) Constructor {
	return func(b GraphBuilder) error {
		if b == nil {
			return ErrNilBuilder
		}
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		b.SetVertexCount(n)
		for i := 0; i < n-1; i++ {
			b.AddEdge(i, i+1, lattice.Zero)
		}
		return nil
	}
}

// Ring builds an n-vertex cycle (0..n-1) that closes with a single unit
// translation along axis: edges i->(i+1) for i<n-1 carry zero
// translation, and the closing edge (n-1)->0 carries one cell step.
// A Ring threads the periodic cell once, so its component has dimension
// 1 regardless of n.
func Ring(n, axis int) Constructor {
	return func(b GraphBuilder) error {
		if b == nil {
			return ErrNilBuilder
		}
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		b.SetVertexCount(n)
		for i := 0; i < n-1; i++ {
			b.AddEdge(i, i+1, lattice.Zero)
		}
		b.AddEdge(n-1, 0, axisVector(axis, 1))
		return nil
	}
}

// Grid builds a rows×cols orthogonal grid with 4-neighborhood edges,
// wrapped into a torus: the wraparound edge closing each row carries a
// unit translation along axisCol, and the wraparound edge closing each
// column carries a unit translation along axisRow. Vertex (r,c) is
// indexed r*cols+c. A fully wrapped grid with rows,cols >= 3 percolates
// in both axes, yielding component dimension 2.
func Grid(rows, cols, axisRow, axisCol int) Constructor {
	return func(b GraphBuilder) error {
		if b == nil {
			return ErrNilBuilder
		}
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		n := rows * cols
		b.SetVertexCount(n)

		idx := func(r, c int) int { return r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := idx(r, c)

				// Right neighbor, wrapping with an axisCol translation.
				if cols > 1 {
					if c+1 < cols {
						b.AddEdge(u, idx(r, c+1), lattice.Zero)
					} else {
						b.AddEdge(u, idx(r, 0), axisVector(axisCol, 1))
					}
				}

				// Bottom neighbor, wrapping with an axisRow translation.
				if rows > 1 {
					if r+1 < rows {
						b.AddEdge(u, idx(r+1, c), lattice.Zero)
					} else {
						b.AddEdge(u, idx(0, c), axisVector(axisRow, 1))
					}
				}
			}
		}
		return nil
	}
}

// Complete builds the complete simple graph K_n (0..n-1) with every edge
// confined to the same cell (zero translation). Any closed walk in K_n
// sums to zero, so the component's dimension is 0 no matter how densely
// connected it is — useful as a counterexample fixture alongside Ring
// and Grid.
func Complete(n int) Constructor {
	return func(b GraphBuilder) error {
		if b == nil {
			return ErrNilBuilder
		}
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		b.SetVertexCount(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.AddEdge(i, j, lattice.Zero)
			}
		}
		return nil
	}
}
