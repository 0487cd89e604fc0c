package server

import (
	"github.com/gorilla/schema"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

const defaultObstacleRatio = 20

// point is the wire form of a cell: [x, y].
type point [2]int

func (p point) grid() gridgraph.Point {
	return gridgraph.Point{X: p[0], Y: p[1]}
}

func fromGrid(points []gridgraph.Point) []point {
	out := make([]point, len(points))
	for i, p := range points {
		out[i] = point{p.X, p.Y}
	}
	return out
}

// pathRequest is the JSON body of POST /v1/path and of a stream request.
// A non-empty Obstacles list wins over ObstacleRatio.
type pathRequest struct {
	Cols          int     `json:"cols"`
	Rows          int     `json:"rows"`
	Start         point   `json:"start"`
	End           point   `json:"end"`
	ObstacleRatio *int    `json:"obstacle_ratio,omitempty"`
	Obstacles     []point `json:"obstacles,omitempty"`
	Seed          int64   `json:"seed,omitempty"`
}

func (r pathRequest) spec() gridgraph.ObstacleSpec {
	ratio := defaultObstacleRatio
	if r.ObstacleRatio != nil {
		ratio = *r.ObstacleRatio
	}
	cells := make([]gridgraph.Point, len(r.Obstacles))
	for i, p := range r.Obstacles {
		cells[i] = p.grid()
	}

	return gridgraph.Resolve(ratio, cells)
}

// pathQuery is the query string of GET /v1/path.
type pathQuery struct {
	Cols          int   `schema:"cols,required"`
	Rows          int   `schema:"rows,required"`
	StartX        int   `schema:"start_x,required"`
	StartY        int   `schema:"start_y,required"`
	EndX          int   `schema:"end_x,required"`
	EndY          int   `schema:"end_y,required"`
	ObstacleRatio *int  `schema:"obstacle_ratio"`
	Seed          int64 `schema:"seed"`
}

func decodePathQuery(src map[string][]string) (pathRequest, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto pathQuery
	if err := dec.Decode(&dto, src); err != nil {
		return pathRequest{}, err
	}

	return pathRequest{
		Cols:          dto.Cols,
		Rows:          dto.Rows,
		Start:         point{dto.StartX, dto.StartY},
		End:           point{dto.EndX, dto.EndY},
		ObstacleRatio: dto.ObstacleRatio,
		Seed:          dto.Seed,
	}, nil
}

// pathResponse is the body of a successful plan.
// MinBreach is set when no route exists: the fewest obstacles that would
// have to be cleared to connect start and end.
type pathResponse struct {
	Found     bool    `json:"found"`
	Path      []point `json:"path"`
	Chain     []point `json:"chain"`
	Cost      int     `json:"cost"`
	Expanded  int     `json:"expanded"`
	Obstacles []point `json:"obstacles"`
	MinBreach *int    `json:"min_breach,omitempty"`
}

func newPathResponse(res *astar.Result, gg *gridgraph.GridGraph) *pathResponse {
	return &pathResponse{
		Found:     res.Found,
		Path:      fromGrid(res.Path),
		Chain:     fromGrid(res.PredecessorChain()),
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Obstacles: fromGrid(gg.Obstacles()),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Stream message types.
const (
	msgSettle = "settle"
	msgResult = "result"
	msgError  = "error"
)

type settleMessage struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	G    int    `json:"g"`
}

type resultMessage struct {
	Type string `json:"type"`
	*pathResponse
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
