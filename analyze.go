package percolyth

import (
	"github.com/katalvlaran/percolyth/pgraph"
	"github.com/katalvlaran/percolyth/percolate"
)

// Option configures Analyze. It is a direct alias of percolate.Option so
// callers never need to import package percolate just to pass options.
type Option = percolate.Option

// ComponentInfo is a direct alias of percolate.ComponentInfo.
type ComponentInfo = percolate.ComponentInfo

// WithOnComponentDone re-exports percolate.WithOnComponentDone.
func WithOnComponentDone(fn func(ComponentInfo)) Option {
	return percolate.WithOnComponentDone(fn)
}

// Analyze runs the full percolation-dimension analysis on g: component
// decomposition followed by the per-component translation-accumulating
// BFS, computed in parallel across components. It is the package's
// single entry point and delegates entirely to percolate.AnalyzeAll.
func Analyze(g *pgraph.PercolationGraph, opts ...Option) ([]ComponentInfo, error) {
	return percolate.AnalyzeAll(g, opts...)
}
