// Notes on implementation choices:
//
//   - Decrease-key uses heap.Fix on the item's tracked index instead of lazy
//     duplicates, so every open cell appears in the heap exactly once.
//   - The goal test happens when a cell is selected, not when it is discovered.
//   - Neighbors are visited in grid wiring order (right, left, up, down).

package astar

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath builds a columns×rows grid from spec and searches it from start to goal.
//
// Validation (in order, before any search work):
//  1. start and goal must lie in [0,columns)×[0,rows) (ErrOutOfRange).
//  2. the grid must be constructible (gridgraph.ErrEmptyGrid, gridgraph.ErrInvalidObstacleSpec).
//  3. start and goal must not be obstacles (ErrBlockedEndpoint). Density draws never
//     place obstacles on them; an explicit list can.
//
// A missing route is reported as Result.Found == false with a nil error.
func FindPath(
	columns, rows int,
	start, goal gridgraph.Point,
	spec gridgraph.ObstacleSpec,
	opts ...Option,
) (*Result, error) {
	gg, err := Build(columns, rows, start, goal, spec, opts...)
	if err != nil {
		return nil, err
	}

	return Search(gg, start, goal, opts...)
}

// Build validates start and goal against the dimensions, then constructs the grid
// with start and goal reserved from density draws. Grid options come from
// WithGridOptions.
func Build(
	columns, rows int,
	start, goal gridgraph.Point,
	spec gridgraph.ObstacleSpec,
	opts ...Option,
) (*gridgraph.GridGraph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if columns > 0 && rows > 0 {
		if err := checkBounds(columns, rows, "start", start); err != nil {
			return nil, err
		}
		if err := checkBounds(columns, rows, "goal", goal); err != nil {
			return nil, err
		}
	}

	gridOpts := make([]gridgraph.Option, 0, len(cfg.GridOptions)+1)
	gridOpts = append(gridOpts, cfg.GridOptions...)
	gridOpts = append(gridOpts, gridgraph.WithReserved(start, goal))

	return gridgraph.NewGridGraph(columns, rows, spec, gridOpts...)
}

// Search runs A* on gg from start to goal.
//
// Preconditions and validation (in order):
//  1. gg must be non-nil (ErrNilGrid).
//  2. start and goal must be inside gg (ErrOutOfRange).
//  3. start and goal must be passable (ErrBlockedEndpoint).
//  4. options must be valid (ErrOptionViolation).
//
// Returns:
//
//   - Result with Found == true and the start→goal Path on success.
//   - Result with Found == false and a nil Path when the open set is exhausted.
//   - ctx.Err(), a wrapped OnSettle error, or ErrExpansionLimit if aborted;
//     the Result is still returned with the Expanded count.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(gg *gridgraph.GridGraph, start, goal gridgraph.Point, opts ...Option) (*Result, error) {
	// 1) Validate grid
	if gg == nil {
		return nil, ErrNilGrid
	}

	// 2) Validate endpoints
	if err := checkBounds(gg.Width, gg.Height, "start", start); err != nil {
		return nil, err
	}
	if err := checkBounds(gg.Width, gg.Height, "goal", goal); err != nil {
		return nil, err
	}
	if gg.IsObstacle(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrBlockedEndpoint, start.X, start.Y)
	}
	if gg.IsObstacle(goal) {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrBlockedEndpoint, goal.X, goal.Y)
	}

	// 3) Apply and validate options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 4) Run
	r := newRunner(gg, goal, cfg)
	r.init(start)
	Log.WithFields(logrus.Fields{
		"width":  gg.Width,
		"height": gg.Height,
		"start":  start,
		"goal":   goal,
	}).Debug("astar: search started")

	res, err := r.process()
	if err != nil {
		Log.WithFields(logrus.Fields{
			"expanded": r.expanded,
			"error":    err,
		}).Debug("astar: search aborted")
		return res, err
	}
	Log.WithFields(logrus.Fields{
		"found":    res.Found,
		"cost":     res.Cost,
		"expanded": res.Expanded,
	}).Debug("astar: search finished")

	return res, nil
}

// checkBounds reports ErrOutOfRange for a point outside [0,columns)×[0,rows).
func checkBounds(columns, rows int, role string, p gridgraph.Point) error {
	if p.X < 0 || p.X >= columns || p.Y < 0 || p.Y >= rows {
		return fmt.Errorf("%w: %s (%d,%d) outside %d×%d", ErrOutOfRange, role, p.X, p.Y, columns, rows)
	}

	return nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	gg       *gridgraph.GridGraph
	goal     gridgraph.Point
	opts     Options
	open     openQueue                           // frontier, ordered by (f, seq)
	inOpen   map[gridgraph.Point]*item           // frontier lookup by coordinate
	closed   map[gridgraph.Point]bool            // settled cells
	prev     map[gridgraph.Point]gridgraph.Point // predecessor on the current best route
	seq      int                                 // next insertion number
	expanded int                                 // settled cell count
}

func newRunner(gg *gridgraph.GridGraph, goal gridgraph.Point, opts Options) *runner {
	return &runner{
		gg:     gg,
		goal:   goal,
		opts:   opts,
		open:   make(openQueue, 0, 64),
		inOpen: make(map[gridgraph.Point]*item),
		closed: make(map[gridgraph.Point]bool),
		prev:   make(map[gridgraph.Point]gridgraph.Point),
	}
}

// init seeds the open set with the start cell at g = 0.
func (r *runner) init(start gridgraph.Point) {
	heap.Init(&r.open)
	h := Manhattan(start, r.goal)
	r.push(&item{p: start, g: 0, h: h, f: h})
}

// push inserts a cell that is not yet open, assigning its insertion number.
func (r *runner) push(it *item) {
	it.seq = r.seq
	r.seq++
	heap.Push(&r.open, it)
	r.inOpen[it.p] = it
}

// process is the main loop: select, goal check, settle, expand.
// It stops on goal, exhaustion, cancellation, hook error or expansion limit.
func (r *runner) process() (*Result, error) {
	ctx := r.opts.Ctx
	for r.open.Len() > 0 {
		// 1) Cancellation check
		select {
		case <-ctx.Done():
			return &Result{Expanded: r.expanded}, ctx.Err()
		default:
		}

		// 2) Select the lowest (f, seq) cell
		cur := heap.Pop(&r.open).(*item)
		delete(r.inOpen, cur.p)

		// 3) Goal check
		if cur.p == r.goal {
			path := r.reconstruct(cur.p)
			return &Result{
				Path:     path,
				Found:    true,
				Cost:     cur.g,
				Expanded: r.expanded,
			}, nil
		}

		// 4) Work cap: the goal was not selected within the budget
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return &Result{Expanded: r.expanded},
				fmt.Errorf("%w: %d cells settled", ErrExpansionLimit, r.expanded)
		}

		// 5) Settle
		r.closed[cur.p] = true
		r.expanded++
		if Log.IsLevelEnabled(logrus.TraceLevel) {
			Log.WithFields(logrus.Fields{"cell": cur.p, "g": cur.g, "f": cur.f}).Trace("astar: settled")
		}
		if err := r.opts.OnSettle(cur.p, cur.g); err != nil {
			return &Result{Expanded: r.expanded},
				fmt.Errorf("astar: OnSettle hook for (%d,%d): %w", cur.p.X, cur.p.Y, err)
		}

		// 6) Expand neighbors
		r.expand(cur)
	}

	return &Result{Expanded: r.expanded}, nil
}

// expand relaxes every passable, unsettled neighbor of cur with unit edge cost.
func (r *runner) expand(cur *item) {
	tempG := cur.g + 1
	for _, nb := range r.gg.Neighbors(cur.p) {
		if r.closed[nb] || r.gg.IsObstacle(nb) {
			continue
		}

		if it, ok := r.inOpen[nb]; ok {
			// Already open: keep the better route, keep the insertion rank.
			if tempG < it.g {
				it.g = tempG
				it.h = Manhattan(nb, r.goal)
				it.f = it.g + it.h
				r.prev[nb] = cur.p
				heap.Fix(&r.open, it.index)
			}
			continue
		}

		h := Manhattan(nb, r.goal)
		r.prev[nb] = cur.p
		r.push(&item{p: nb, g: tempG, h: h, f: tempG + h})
	}
}
