package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// maxBodyBytes bounds request bodies and stream request messages.
const maxBodyBytes = 1 << 20

// errTooLarge is returned when cols*rows exceeds the configured max_cells.
var errTooLarge = errors.New("server: grid exceeds max_cells")

// plan builds the grid for req and searches it. onSettle may be nil.
func (s *Server) plan(ctx context.Context, req pathRequest, onSettle func(gridgraph.Point, int) error) (*pathResponse, error) {
	if s.cfg.MaxCells > 0 && req.Cols > 0 && req.Rows > 0 && req.Cols > s.cfg.MaxCells/req.Rows {
		return nil, fmt.Errorf("%w: %d×%d > %d", errTooLarge, req.Cols, req.Rows, s.cfg.MaxCells)
	}

	start, goal := req.Start.grid(), req.End.grid()
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(s.cfg.MaxExpansions),
		astar.WithOnSettle(onSettle),
	}
	if req.Seed != 0 {
		opts = append(opts, astar.WithGridOptions(gridgraph.WithSeed(req.Seed)))
	}

	gg, err := astar.Build(req.Cols, req.Rows, start, goal, req.spec(), opts...)
	if err != nil {
		return nil, err
	}
	res, err := astar.Search(gg, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	resp := newPathResponse(res, gg)
	if !res.Found {
		if _, breach, err := gg.MinBreach(start, goal); err == nil {
			resp.MinBreach = &breach
		}
	}

	return resp, nil
}

// observe records metrics for one plan call and returns the outcome label.
func observe(transport string, begin time.Time, resp *pathResponse, err error) string {
	searchDuration.WithLabelValues(transport).Observe(time.Since(begin).Seconds())

	var outcome string
	switch {
	case err == nil && resp.Found:
		outcome = outcomeFound
	case err == nil:
		outcome = outcomeNoRoute
	case errors.Is(err, astar.ErrExpansionLimit):
		outcome = outcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeAborted
	default:
		outcome = outcomeRejected
	}
	if err == nil {
		searchExpanded.Observe(float64(resp.Expanded))
	}
	searchTotal.WithLabelValues(transport, outcome).Inc()

	return outcome
}

// statusOf maps a plan error to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, astar.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) handleGetPath(w http.ResponseWriter, r *http.Request) {
	req, err := decodePathQuery(r.URL.Query())
	if err != nil {
		s.replyError(w, r, http.StatusBadRequest, err)
		return
	}
	s.servePlan(w, r, req)
}

func (s *Server) handlePostPath(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.replyError(w, r, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	s.servePlan(w, r, req)
}

func (s *Server) servePlan(w http.ResponseWriter, r *http.Request, req pathRequest) {
	begin := time.Now()
	resp, err := s.plan(r.Context(), req, nil)
	outcome := observe("http", begin, resp, err)
	if err != nil {
		s.replyError(w, r, statusOf(err), err)
		return
	}

	s.entry(r).WithFields(logrus.Fields{
		"outcome":  outcome,
		"cost":     resp.Cost,
		"expanded": resp.Expanded,
	}).Debug("planned")
	s.replyWithJSON(w, http.StatusOK, resp)
}

// handleStream upgrades to a WebSocket, reads one request and streams every
// settled cell followed by the result. The connection is closed afterwards.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.entry(r).Warn("upgrade: ", err)
		return
	}
	defer c.Close()
	c.SetReadLimit(maxBodyBytes)

	req, err := readStreamRequest(c)
	if err != nil {
		s.writeStreamError(c, r, fmt.Errorf("decode request: %w", err))
		return
	}

	begin := time.Now()
	resp, err := s.plan(r.Context(), req, func(p gridgraph.Point, g int) error {
		return c.WriteJSON(settleMessage{Type: msgSettle, X: p.X, Y: p.Y, G: g})
	})
	observe("ws", begin, resp, err)
	if err != nil {
		s.writeStreamError(c, r, err)
		return
	}

	if err := c.WriteJSON(resultMessage{Type: msgResult, pathResponse: resp}); err != nil {
		s.entry(r).Warn("write: ", err)
		return
	}
	c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readStreamRequest decodes the first message with the same rules as POST bodies.
func readStreamRequest(c *websocket.Conn) (pathRequest, error) {
	var req pathRequest
	_, rd, err := c.NextReader()
	if err != nil {
		return req, err
	}
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	err = dec.Decode(&req)

	return req, err
}

func (s *Server) writeStreamError(c *websocket.Conn, r *http.Request, err error) {
	s.entry(r).WithError(err).Debug("stream rejected")
	if werr := c.WriteJSON(errorMessage{Type: msgError, Error: err.Error()}); werr != nil {
		s.entry(r).Warn("write: ", werr)
		return
	}
	c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Server) entry(r *http.Request) *logrus.Entry {
	return s.log.WithField("request_id", requestID(r.Context()))
}

func (s *Server) replyError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.entry(r).WithError(err).WithField("status_code", status).Debug("request rejected")
	s.replyWithJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) replyWithJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
