// Package gridgraph provides the grid builder for route planning:
//
//   - Cell creation for every (x,y) with 0 ≤ x < columns, 0 ≤ y < rows
//   - Obstacle assignment from a density or an explicit list
//   - Orthogonal neighbor wiring (Conn4)
//
// Obstacle cells keep their neighbor lists; passability is decided by the searcher.
package gridgraph

import (
	"fmt"
	"math"
)

// NewGridGraph constructs a columns×rows GridGraph and applies spec.
// Returns ErrEmptyGrid if columns or rows is not positive, ErrGridTooLarge
// if columns×rows overflows int, and
// ErrInvalidObstacleSpec (wrapping ErrBadDensity or ErrObstacleOutOfRange)
// if spec cannot be applied. No partial grid is returned on error.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(columns, rows int, spec ObstacleSpec, opts ...Option) (*GridGraph, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, columns, rows)
	}
	if columns > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: %d×%d cells", ErrGridTooLarge, columns, rows)
	}
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	gg := &GridGraph{
		Width:    columns,
		Height:   rows,
		Conn:     Conn4,
		obstacle: make([]bool, columns*rows),
	}
	if err := gg.applyObstacles(spec, cfg); err != nil {
		return nil, err
	}
	gg.wireNeighbors()

	return gg, nil
}

// applyObstacles fills the obstacle mask according to spec.
func (gg *GridGraph) applyObstacles(spec ObstacleSpec, cfg GridOptions) error {
	switch spec.Kind {
	case ObstaclesNone:
		return nil

	case ObstaclesDensity:
		if spec.Percent < 0 || spec.Percent > 100 {
			return fmt.Errorf("%w: %w: got %d", ErrInvalidObstacleSpec, ErrBadDensity, spec.Percent)
		}
		if spec.Percent == 0 {
			return nil
		}
		reserved := make(map[Point]struct{}, len(cfg.Reserved))
		for _, p := range cfg.Reserved {
			reserved[p] = struct{}{}
		}
		// Column-major draw order: one independent draw per cell.
		for x := 0; x < gg.Width; x++ {
			for y := 0; y < gg.Height; y++ {
				if cfg.Rand.Intn(100) >= spec.Percent {
					continue
				}
				if _, ok := reserved[Point{X: x, Y: y}]; ok {
					continue
				}
				gg.obstacle[gg.index(x, y)] = true
			}
		}
		return nil

	case ObstaclesList:
		for _, p := range spec.Cells {
			if !gg.InBounds(p.X, p.Y) {
				return fmt.Errorf("%w: %w: (%d,%d) outside %d×%d",
					ErrInvalidObstacleSpec, ErrObstacleOutOfRange, p.X, p.Y, gg.Width, gg.Height)
			}
			gg.obstacle[gg.index(p.X, p.Y)] = true
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidObstacleSpec, spec.Kind)
	}
}

// wireNeighbors precomputes each cell's neighbors under gg.Conn.
// Lists are computed independently per cell; symmetry follows from the offsets.
func (gg *GridGraph) wireNeighbors() {
	offsets := gg.Conn.Offsets()
	gg.neighbors = make([][]Point, gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			nbs := make([]Point, 0, len(offsets))
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				nbs = append(nbs, Point{X: nx, Y: ny})
			}
			gg.neighbors[gg.index(x, y)] = nbs
		}
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies within the grid boundaries.
func (gg *GridGraph) Contains(p Point) bool {
	return gg.InBounds(p.X, p.Y)
}

// IsObstacle reports whether p is impassable. Out-of-bounds points report false.
// Complexity: O(1).
func (gg *GridGraph) IsObstacle(p Point) bool {
	if !gg.Contains(p) {
		return false
	}

	return gg.obstacle[gg.index(p.X, p.Y)]
}

// Cell returns the cell at p, or ErrPointOutOfRange.
func (gg *GridGraph) Cell(p Point) (Cell, error) {
	if !gg.Contains(p) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrPointOutOfRange, p.X, p.Y)
	}

	return Cell{X: p.X, Y: p.Y, Obstacle: gg.obstacle[gg.index(p.X, p.Y)]}, nil
}

// Neighbors returns the orthogonal neighbors of p in wiring order
// (right, left, up, down), obstacles included. The slice is owned by the grid
// and must not be modified. Out-of-bounds points have no neighbors.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p Point) []Point {
	if !gg.Contains(p) {
		return nil
	}

	return gg.neighbors[gg.index(p.X, p.Y)]
}

// Obstacles returns all obstacle coordinates in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) Obstacles() []Point {
	var out []Point
	for i, blocked := range gg.obstacle {
		if blocked {
			x, y := gg.Coordinate(i)
			out = append(out, Point{X: x, Y: y})
		}
	}

	return out
}

// ObstacleCount returns the number of obstacle cells.
func (gg *GridGraph) ObstacleCount() int {
	n := 0
	for _, blocked := range gg.obstacle {
		if blocked {
			n++
		}
	}

	return n
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Index maps p to its row-major index. p must be in bounds.
func (gg *GridGraph) Index(p Point) int {
	return gg.index(p.X, p.Y)
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
