package percolate

import (
	"github.com/katalvlaran/percolyth/lattice"
	"github.com/katalvlaran/percolyth/pgraph"
)

// walkItem is one entry of the translation-accumulating BFS queue: a
// vertex paired with the translation accumulated along the walk that
// reached it.
type walkItem struct {
	vertex int
	accum  lattice.TranslationVector
}

// analyzeComponentDim runs the pass-two translation-accumulating BFS,
// seeded at root with the zero translation, and returns the resulting
// percolation dimension (the final size of the cycle-translation basis).
//
// visited and original are task-local: two components analyzed
// concurrently must never share these buffers, since each buffer is only
// correct as a record of one component's own walk — merging records from
// two components would let a translation accumulated in one leak into
// the independence test of the other. Keying them by vertex id in a map
// (rather than a full [0,V) slice) keeps a single small component's
// memory cost proportional to its own size, not to the whole graph.
func analyzeComponentDim(g *pgraph.PercolationGraph, root int) int {
	visited := make(map[int]bool)
	original := make(map[int]lattice.TranslationVector)
	var basis []lattice.TranslationVector

	queue := []walkItem{{vertex: root, accum: lattice.Zero}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		u, p := item.vertex, item.accum

		if visited[u] {
			delta := p.Sub(original[u])
			if lattice.Independent(basis, delta) {
				basis = append(basis, delta)
			}
			if len(basis) >= lattice.Dim {
				break
			}
			continue
		}

		visited[u] = true
		original[u] = p

		for _, inc := range g.Incidences(u) {
			w := inc.Neighbor
			next := p.Add(inc.Edge.Translation)
			if visited[w] && original[w] == next {
				// Re-entering w with the exact translation already on
				// record yields Δ=0, which independence always rejects;
				// skipping the enqueue here is what bounds the BFS.
				continue
			}
			queue = append(queue, walkItem{vertex: w, accum: next})
		}
	}

	return len(basis)
}
