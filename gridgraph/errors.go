package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates columns or rows is not positive.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one column and one row")
	// ErrGridTooLarge indicates columns×rows does not fit in an int.
	ErrGridTooLarge = errors.New("gridgraph: grid dimensions overflow")
	// ErrInvalidObstacleSpec indicates the obstacle specification cannot be applied to the grid.
	ErrInvalidObstacleSpec = errors.New("gridgraph: invalid obstacle specification")
	// ErrBadDensity indicates an obstacle percentage outside [0,100].
	ErrBadDensity = errors.New("gridgraph: obstacle percentage must be within [0,100]")
	// ErrObstacleOutOfRange indicates an explicit obstacle coordinate outside the grid.
	ErrObstacleOutOfRange = errors.New("gridgraph: obstacle coordinate out of range")
	// ErrPointOutOfRange indicates a query point outside the grid.
	ErrPointOutOfRange = errors.New("gridgraph: point out of range")
)
