package percolate

import (
	"runtime"

	"github.com/katalvlaran/percolyth/pgraph"
	"golang.org/x/sync/errgroup"
)

// AnalyzeAll runs the full two-pass analysis on g: pass one (Components)
// partitions the vertex set sequentially; pass two fans each component's
// percolation-dimension BFS out to its own goroutine via a bounded
// errgroup.Group, each allocating its own visited/original buffers so no
// state is shared across components. The returned slice preserves pass
// one's root order regardless of which goroutine finishes first.
//
// AnalyzeAll returns ErrGraphNil for a nil graph. Analysis itself cannot
// fail — analyzeComponentDim is a pure function of its inputs and every
// task returns nil — so errgroup.Wait always returns nil here and
// AnalyzeAll returns no other error.
func AnalyzeAll(g *pgraph.PercolationGraph, opts ...Option) ([]ComponentInfo, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)

	comps := Components(g)

	eg := new(errgroup.Group)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range comps {
		i := i
		eg.Go(func() error {
			root := comps[i].Vertices[0].Index
			comps[i].PercolationDim = analyzeComponentDim(g, root)
			if cfg.onComponentDone != nil {
				cfg.onComponentDone(comps[i])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return comps, nil
}
