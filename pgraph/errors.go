package pgraph

import "errors"

// Sentinel errors for PercolationGraph operations. Callers should branch
// on these with errors.Is rather than string comparison.
var (
	// ErrNegativeIndex indicates a vertex index or max_index argument was
	// negative.
	ErrNegativeIndex = errors.New("pgraph: vertex index must be non-negative")

	// ErrVertexCapExceeded indicates a growth operation would exceed the
	// graph's configured WithMaxVertices cap.
	ErrVertexCapExceeded = errors.New("pgraph: vertex index exceeds configured cap")

	// ErrIndexOutOfRange indicates a read accessor was called with an
	// index beyond the graph's current size.
	ErrIndexOutOfRange = errors.New("pgraph: index out of range")
)
