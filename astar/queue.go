package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// item is a frontier cell with its current cost estimate.
// seq is assigned when the cell first enters the open set and never changes,
// so cost updates keep the cell's first-seen rank.
type item struct {
	p     gridgraph.Point
	g     int // cost-so-far from start
	h     int // Manhattan distance to goal
	f     int // g + h
	seq   int // insertion order, secondary sort key
	index int // position in the heap, maintained by Swap
}

// openQueue is a min-heap of *item ordered by (f, seq).
type openQueue []*item

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by f, then by insertion order.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements and keeps their indices current for heap.Fix.
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x, which must be an *item.
func (q *openQueue) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*q)
	*q = append(*q, it)
}

// Pop removes and returns the last element.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]

	return it
}
