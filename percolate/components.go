package percolate

import "github.com/katalvlaran/percolyth/pgraph"

// Components runs the untagged pass-one decomposition: for each vertex in
// ascending id order, if unvisited, a breadth-first search over the
// unweighted projection of the multigraph discovers one component. Edge
// translations, duplicate incidences, and self-loops are ignored here —
// they matter only to pass two (AnalyzeAll).
//
// The returned slice's component_index values are 0, 1, …, k-1 in root
// order; each ComponentInfo's Vertices are listed in BFS discovery order,
// with PercolationDim left at UnsetDim.
//
// Complexity: O(V+E).
func Components(g *pgraph.PercolationGraph) []ComponentInfo {
	n := g.VertexCount()
	visited := make([]bool, n)
	var comps []ComponentInfo

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		comps = append(comps, discoverComponent(g, root, len(comps), visited))
	}
	return comps
}

// discoverComponent runs one BFS rooted at root, marking visited as it
// goes, and returns the resulting ComponentInfo tagged with index.
func discoverComponent(g *pgraph.PercolationGraph, root, index int, visited []bool) ComponentInfo {
	queue := []int{root}
	visited[root] = true

	var discovered []pgraph.VertexData
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		vd, err := g.Vertex(u)
		if err != nil {
			// Vertex count was sampled before this BFS started; it only
			// ever grows, so every id we enqueue is already valid.
			panic("percolate: component BFS visited a vertex outside graph bounds")
		}
		discovered = append(discovered, vd)

		for _, inc := range g.Incidences(u) {
			if !visited[inc.Neighbor] {
				visited[inc.Neighbor] = true
				queue = append(queue, inc.Neighbor)
			}
		}
	}

	return ComponentInfo{
		ComponentIndex: index,
		PercolationDim: UnsetDim,
		Vertices:       discovered,
	}
}
