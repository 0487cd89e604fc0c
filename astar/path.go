package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// reconstruct walks predecessor links from goal back to the start cell
// (the only cell without a predecessor) and returns the route start→goal.
// Complexity: O(path length).
func (r *runner) reconstruct(goal gridgraph.Point) []gridgraph.Point {
	path := []gridgraph.Point{goal}
	for cur := goal; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
