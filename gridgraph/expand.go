package gridgraph

import (
	"container/list"
	"fmt"
)

// MinBreach finds a route from a to b that crosses the fewest obstacle cells.
// Each obstacle cell on the route (endpoints included) costs 1; passable cells cost 0.
// Returns the route (a and b included) and the number of obstacles to clear.
// A cost of 0 means a and b are already connected. Every cell is crossable here,
// so a route always exists between in-grid points.
//
// Behavior:
//  1. Validate both points (ErrPointOutOfRange).
//  2. 0-1 BFS from a:
//     • Moving into a passable cell → cost 0 (push front)
//     • Moving into an obstacle     → cost 1 (push back)
//  3. Stop when b is dequeued.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(W·H) time, O(W·H) memory for distance and prev arrays.
func (gg *GridGraph) MinBreach(a, b Point) (path []Point, cost int, err error) {
	if !gg.Contains(a) {
		return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrPointOutOfRange, a.X, a.Y)
	}
	if !gg.Contains(b) {
		return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrPointOutOfRange, b.X, b.Y)
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.index(a.X, a.Y), gg.index(b.X, b.Y)
	dist[src] = 0
	if gg.obstacle[src] {
		dist[src] = 1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		for _, vp := range gg.neighbors[u] {
			v := gg.index(vp.X, vp.Y)
			step := 0
			if gg.obstacle[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := dst; at >= 0; at = prev[at] {
		x, y := gg.Coordinate(at)
		path = append(path, Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
