package percolate

import "github.com/katalvlaran/percolyth/pgraph"

// UnsetDim is the sentinel percolation dimension assigned by pass one,
// before pass two has filled in the real value.
const UnsetDim = -1

// ComponentInfo describes one connected component of a PercolationGraph.
type ComponentInfo struct {
	// ComponentIndex is 0-based, assigned in root-order of discovery
	// during pass one.
	ComponentIndex int

	// PercolationDim is the rank, 0..3, of the component's
	// cycle-translation lattice. It is UnsetDim until pass two runs.
	PercolationDim int

	// Vertices lists the component's vertices in pass-one BFS discovery
	// order. Vertices[0] is always the component's root.
	Vertices []pgraph.VertexData
}

// Option configures AnalyzeAll.
type Option func(*config)

type config struct {
	onComponentDone func(ComponentInfo)
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOnComponentDone registers a callback invoked once per component, as
// soon as that component's percolation dimension has been computed.
// Because pass two runs components in parallel, callbacks may arrive out
// of component-index order; the final AnalyzeAll result slice is always
// reassembled in order regardless.
func WithOnComponentDone(fn func(ComponentInfo)) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.onComponentDone = fn
		}
	}
}
