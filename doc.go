// Package gridpath finds shortest routes on uniform 2-D grids with blocked
// cells, using A* with the Manhattan heuristic and 4-directional unit moves.
//
// What is in the box?
//
//	gridgraph/   the grid: dimensions, obstacle mask (none, random density or an
//	             explicit list), neighbor wiring, connected components, MinBreach
//	astar/       the search engine and path reconstruction, plus FindPath
//	obstacles/   reads {"data": [[x,y],...]} obstacle documents (JSON or YAML)
//	config/      flags, GRIDPATH_* environment and config-file settings; loggers
//	server/      HTTP and WebSocket route planning with Prometheus metrics
//	cmd/         the gridpath CLI and the gridpath-server binary
//	examples/    runnable scenarios
//
// Why this shape?
//
//   - Deterministic: equal-cost ties go to the earliest discovered cell, and
//     density draws take an explicit seed.
//   - "No route" is an answer, not an error.
//   - Grids are immutable once built; search state lives in the search call.
//
// Quick start:
//
//	res, err := astar.FindPath(10, 10,
//		gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 9, Y: 9},
//		gridgraph.Density(20),
//		astar.WithGridOptions(gridgraph.WithSeed(42)))
//	if err != nil {
//		return err
//	}
//	if res.Found {
//		fmt.Println(res.Path)
//	}
package gridpath
