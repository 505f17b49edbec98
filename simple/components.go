package simple

import "github.com/davleko/graphops/core"

// ConnectedComponents finds all weakly connected components of g, ignoring
// edge direction. Returns a slice of components; each component lists its
// nodes in BFS discovery order, components themselves in creation order of
// their lowest-index node.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func ConnectedComponents(g *core.Graph) [][]*core.Node {
	seen := make(map[*core.Node]bool, g.NodeCount())
	var comps [][]*core.Node

	for _, start := range g.Nodes() {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []*core.Node{start}
		seen[start] = true
		var comp []*core.Node

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, a := range u.Adj() {
				v := a.TwinNode()
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
