// Package gridgraph defines core types, options, and obstacle specifications
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"fmt"
	"math/rand"
	"time"
)

// Point is a grid coordinate. It is the canonical key for every cell lookup.
type Point struct {
	X, Y int
}

// String renders the point as "x y", the line format of the CLI output.
func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Cell represents a single grid cell with its coordinates and obstacle flag.
type Cell struct {
	X, Y     int  // Coordinates within the grid
	Obstacle bool // Impassable when true
}

// Point returns the cell coordinates as a Point.
func (c Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// ObstacleKind selects how obstacles are placed on a new grid.
type ObstacleKind int

const (
	// ObstaclesNone leaves every cell passable.
	ObstaclesNone ObstacleKind = iota
	// ObstaclesDensity draws each cell independently with probability Percent/100.
	ObstaclesDensity
	// ObstaclesList marks exactly the listed Cells.
	ObstaclesList
)

// String returns the lower-case name of the kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstaclesNone:
		return "none"
	case ObstaclesDensity:
		return "density"
	case ObstaclesList:
		return "list"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

// ObstacleSpec describes the obstacles of a grid. Only the field matching Kind is read.
type ObstacleSpec struct {
	Kind    ObstacleKind
	Percent int     // ObstaclesDensity: per-cell probability in percent, [0,100]
	Cells   []Point // ObstaclesList: exact obstacle coordinates
}

// NoObstacles returns a spec for a fully passable grid.
func NoObstacles() ObstacleSpec {
	return ObstacleSpec{Kind: ObstaclesNone}
}

// Density returns a spec drawing each cell as an obstacle with probability percent/100.
// The realized obstacle fraction is only approximately percent.
func Density(percent int) ObstacleSpec {
	return ObstacleSpec{Kind: ObstaclesDensity, Percent: percent}
}

// List returns a spec marking exactly the given cells as obstacles.
func List(cells ...Point) ObstacleSpec {
	return ObstacleSpec{Kind: ObstaclesList, Cells: cells}
}

// Resolve picks the spec for callers holding both a percentage and a list:
// a non-empty list takes precedence, otherwise the percentage is used.
func Resolve(percent int, cells []Point) ObstacleSpec {
	if len(cells) > 0 {
		return List(cells...)
	}

	return Density(percent)
}

// Connectivity selects neighbor connectivity. Only orthogonal movement is supported.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: right, left, up, down.
	Conn4 Connectivity = iota
)

// Offsets returns the (dx,dy) steps of c in neighbor wiring order.
// Search tie-breaks depend on this order. Unknown values fall back to Conn4.
func (c Connectivity) Offsets() [][2]int {
	switch c {
	case Conn4:
		return [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	default:
		return Conn4.Offsets()
	}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Rand drives density draws. Never nil after DefaultGridOptions.
	Rand *rand.Rand
	// Reserved cells are never drawn as density obstacles.
	Reserved []Point
}

// Option customizes grid construction.
type Option func(*GridOptions)

// DefaultGridOptions returns GridOptions with a time-seeded RNG and no reserved cells.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *GridOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for density draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}
	return func(o *GridOptions) {
		o.Rand = r
	}
}

// WithReserved keeps the given cells out of density draws.
// Explicit obstacle lists are not affected.
func WithReserved(points ...Point) Option {
	return func(o *GridOptions) {
		o.Reserved = append(o.Reserved, points...)
	}
}

// GridGraph is a columns×rows lattice with an obstacle mask. It is immutable once built.
// Width is the number of columns (x range), Height the number of rows (y range).
// Cells are stored row-major: index = y*Width + x.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	obstacle      []bool
	neighbors     [][]Point
}
