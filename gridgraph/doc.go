// Package gridgraph builds the cell lattice that path searches run on.
//
// What:
//
//   - GridGraph is a columns×rows lattice of cells with an obstacle mask.
//   - Obstacles come from an ObstacleSpec: none, a per-cell random density, or an explicit list.
//   - Every cell is wired to its orthogonal neighbors in the fixed order
//     right (x+1), left (x-1), up (y+1), down (y-1); out-of-bounds neighbors are omitted.
//   - Identifies connected components of passable cells (Conn4).
//   - Computes the minimal number of obstacle cells to clear (0-1 BFS) to connect two cells.
//
// Why:
//
//   - Route planning: a frozen, validated grid is the only input the A* engine trusts.
//   - Diagnostics: components tell whether a route can exist at all; MinBreach tells how
//     far a blocked instance is from being solvable.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H) (neighbor lists hold ≤4 entries per cell).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - MinBreach:           O(W×H), Memory: O(W×H).
//
// Options:
//
//   - WithSeed(seed) / WithRand(rng): RNG used for density draws.
//   - WithReserved(points...): cells never drawn as density obstacles.
//
// Errors:
//
//   - ErrEmptyGrid: columns or rows is not positive.
//   - ErrGridTooLarge: columns×rows overflows int.
//   - ErrInvalidObstacleSpec: wraps ErrBadDensity or ErrObstacleOutOfRange.
//   - ErrPointOutOfRange: a query point lies outside the grid.
package gridgraph
