package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// under Conn4. Returns a slice of components; each component lists its
// cells in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Point

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if gg.obstacle[i0] || seen[i0] {
				continue
			}
			// BFS to collect component
			seen[i0] = true
			queue := []Point{{X: x, Y: y}}
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range gg.Neighbors(queue[qi]) {
					vi := gg.index(v.X, v.Y)
					if gg.obstacle[vi] || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// componentLabels returns, per row-major index, the component number of the
// cell, or -1 for obstacles.
func (gg *GridGraph) componentLabels() []int {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, p := range comp {
			labels[gg.index(p.X, p.Y)] = c
		}
	}

	return labels
}

// Connected reports whether a route of passable cells joins a and b.
// Obstacle or out-of-bounds endpoints are never connected.
// Complexity: O(W·H).
func (gg *GridGraph) Connected(a, b Point) bool {
	if !gg.Contains(a) || !gg.Contains(b) || gg.IsObstacle(a) || gg.IsObstacle(b) {
		return false
	}
	if a == b {
		return true
	}
	labels := gg.componentLabels()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}
