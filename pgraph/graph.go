package pgraph

import "github.com/katalvlaran/percolyth/lattice"

// checkCap reports whether growing to accommodate maxIndex would violate
// a configured WithMaxVertices cap. Caller holds g.mu.
func (g *PercolationGraph) checkCap(maxIndex int) error {
	if g.maxVertices != nil && maxIndex >= *g.maxVertices {
		return ErrVertexCapExceeded
	}
	return nil
}

// growLocked extends vertices/edges so that index maxIndex is valid,
// initializing any newly created slot's VertexData.Index to its own
// position. Caller holds g.mu for writing.
func (g *PercolationGraph) growLocked(maxIndex int) {
	if maxIndex < len(g.vertices) {
		return
	}
	newLen := maxIndex + 1
	for i := len(g.vertices); i < newLen; i++ {
		g.vertices = append(g.vertices, VertexData{Index: i})
		g.edges = append(g.edges, nil)
	}
}

// ReserveVertices ensures capacity for at least max_index+1 vertices,
// initializing any newly created slots with their own index and an empty
// incidence list. Reserving below the current size is a no-op.
//
// Complexity: O(n) where n is the number of newly created slots.
func (g *PercolationGraph) ReserveVertices(maxIndex int) error {
	if maxIndex < 0 {
		return ErrNegativeIndex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkCap(maxIndex); err != nil {
		return err
	}
	g.growLocked(maxIndex)
	return nil
}

// AddVertex grows the graph as needed to cover index i, overwrites slot i
// with data, then forces data.Index to i regardless of what the caller
// supplied — VertexData.Index always mirrors the slot it lives in.
//
// Complexity: O(n) amortized, where n is the number of newly created
// slots (0 if i is already within capacity).
func (g *PercolationGraph) AddVertex(i int, data VertexData) error {
	if i < 0 {
		return ErrNegativeIndex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkCap(i); err != nil {
		return err
	}
	g.growLocked(i)
	data.Index = i
	g.vertices[i] = data
	return nil
}

// AddEdge grows the graph to cover max(u,v), then appends (v,t) to the
// incidence list of u and (u,-t) to the incidence list of v — including
// when u == v, in which case both incidences land on the same vertex and
// both must be retained (a self-loop with a non-zero translation is a
// cycle generator in its own right).
//
// Duplicate (neighbor, translation) pairs are accepted and preserved:
// they do not change reachability but are never rejected as redundant.
//
// Complexity: O(n) amortized for growth, O(1) for the two appends.
func (g *PercolationGraph) AddEdge(u, v int, t lattice.TranslationVector) error {
	if u < 0 || v < 0 {
		return ErrNegativeIndex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	maxIndex := u
	if v > maxIndex {
		maxIndex = v
	}
	if err := g.checkCap(maxIndex); err != nil {
		return err
	}
	g.growLocked(maxIndex)

	edge := EdgeData{Translation: t}
	g.edges[u] = append(g.edges[u], Incidence{Neighbor: v, Edge: edge})
	g.edges[v] = append(g.edges[v], Incidence{Neighbor: u, Edge: edge.Inverse()})
	return nil
}

// VertexCount returns the number of vertices currently allocated.
//
// Complexity: O(1).
func (g *PercolationGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertex returns the VertexData stored at index i.
//
// Complexity: O(1).
func (g *PercolationGraph) Vertex(i int) (VertexData, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.vertices) {
		return VertexData{}, ErrIndexOutOfRange
	}
	return g.vertices[i], nil
}

// Incidences returns a copy of the incidence list of vertex i, in
// insertion order.
//
// Complexity: O(d), d = degree of i (including multiplicity).
func (g *PercolationGraph) Incidences(i int) []Incidence {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.edges) {
		return nil
	}
	out := make([]Incidence, len(g.edges[i]))
	copy(out, g.edges[i])
	return out
}
