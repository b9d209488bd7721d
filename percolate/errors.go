package percolate

import "errors"

// ErrGraphNil is returned when AnalyzeAll is called with a nil graph.
var ErrGraphNil = errors.New("percolate: graph is nil")
