// Package astar finds shortest routes on a gridgraph.GridGraph with the A*
// algorithm, the Manhattan-distance heuristic and unit-cost 4-directional moves.
//
// Overview:
//
//   - The open set is a binary heap keyed by (f, seq): f = g + h, and seq is the
//     order in which a cell first entered the frontier. Equal f values are therefore
//     resolved first-seen-first, which makes every run deterministic.
//   - The closed set, the cost-so-far map and the predecessor map are all keyed by
//     gridgraph.Point. Search state never lives on the grid, so one grid can serve
//     any number of searches.
//   - A cell moves only forward: unvisited → open → closed. Closed cells are never
//     reopened; with a consistent heuristic on a unit grid this is exact.
//
// When to use:
//
//   - Tile maps, warehouse floors, game levels: any uniform grid with blocked cells.
//   - FindPath builds the grid and searches in one call; Search reuses a grid.
//
// Key features:
//
//   - Result.Path lists the route from start to goal inclusive.
//   - Result.PredecessorChain lists it the classic way: goal's predecessor first,
//     start last, goal excluded.
//   - "No route" is a normal result (Found == false), never an error.
//   - WithContext cancels long searches; WithMaxExpansions caps work per call.
//   - WithOnSettle observes every settled cell; a hook error aborts the search.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell is pushed once and fixed at most 4 times.
//   - Space: O(V) for the open heap, closed set and predecessor map.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         Search received a nil grid.
//   - ErrOutOfRange:      start or goal lies outside the grid.
//   - ErrBlockedEndpoint: start or goal is an obstacle.
//   - ErrOptionViolation: an option received a meaningless value.
//   - ErrExpansionLimit:  MaxExpansions cells were settled without reaching the goal.
//
// Thread safety:
//
//   - Each call owns its state. Concurrent searches over the same grid are safe
//     because the grid is immutable after construction.
package astar
