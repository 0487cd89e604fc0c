// Tunable options, results and error definitions for A* search.

package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Log receives search diagnostics at Debug and Trace level.
// Replace it or change its level to surface them.
var Log = logrus.New()

// Sentinel errors for A* execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfRange is returned when start or goal lies outside the grid.
	ErrOutOfRange = errors.New("astar: coordinate out of range")

	// ErrBlockedEndpoint is returned when start or goal is an obstacle cell.
	ErrBlockedEndpoint = errors.New("astar: start or goal is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions cells were settled
	// without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Option configures A* behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// cells are settled without the goal being selected. 0 means no limit.
	MaxExpansions int

	// OnSettle is called when a cell moves to the closed set, with its
	// cost-so-far. Returning an error aborts the search.
	OnSettle func(p gridgraph.Point, g int) error

	// GridOptions are forwarded to gridgraph.NewGridGraph by FindPath and Build.
	GridOptions []gridgraph.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion limit
//   - no-op OnSettle hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnSettle:      func(gridgraph.Point, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of settled cells.
//
//	n > 0: abort with ErrExpansionLimit after n settled cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnSettle registers a callback to run when a cell is settled.
func WithOnSettle(fn func(p gridgraph.Point, g int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithGridOptions forwards grid construction options (seed, RNG) to FindPath and Build.
// Search ignores them.
func WithGridOptions(opts ...gridgraph.Option) Option {
	return func(o *Options) {
		o.GridOptions = append(o.GridOptions, opts...)
	}
}

// Result holds the outcome of a search:
//   - Path: cells from start to goal inclusive; nil when no route exists.
//   - Found: whether the goal was reached.
//   - Cost: number of moves (len(Path)-1); 0 when not found.
//   - Expanded: number of cells settled into the closed set.
type Result struct {
	Path     []gridgraph.Point
	Found    bool
	Cost     int
	Expanded int
}

// PredecessorChain returns the route as a walk of predecessor links:
// the goal's immediate predecessor first and the start last, goal excluded.
// It is empty when no route exists or when start equals goal.
func (r *Result) PredecessorChain() []gridgraph.Point {
	if len(r.Path) < 2 {
		return []gridgraph.Point{}
	}
	chain := make([]gridgraph.Point, 0, len(r.Path)-1)
	for i := len(r.Path) - 2; i >= 0; i-- {
		chain = append(chain, r.Path[i])
	}

	return chain
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|, the heuristic used by the search.
func Manhattan(a, b gridgraph.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
