package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/gin-gonic/gin"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/hints"
	"github.com/comalice/rivercrossing/internal/logging"
	"github.com/comalice/rivercrossing/internal/primitives"
)

// handleHealth handles GET /v1/health.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handlePuzzle handles GET /v1/puzzle.
func (s *Server) handlePuzzle(c *gin.Context) {
	names := make([]string, 0, len(rc.Characters))
	for _, ch := range rc.Characters {
		names = append(names, ch.String())
	}
	c.JSON(http.StatusOK, PuzzleResponse{
		Start:      primitives.FromState(rc.Start()),
		Goal:       primitives.FromState(rc.Goal()),
		Characters: names,
		Capacity:   rc.Capacity,
	})
}

// handleSolve handles POST /v1/solve.
//
// Response:
//
//	200 OK: SolveResponse, including unsolvable results
//	400 Bad Request: malformed body or unknown names
//	422 Unprocessable Entity: a state breaks a puzzle rule
//	500 Internal Server Error: search exhausted
func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abort(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	formatter, err := hints.ByName(req.Format)
	if err != nil {
		s.abort(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	puzzle := primitives.PuzzleConfig{Start: *req.State, Goal: req.Goal}
	start, goal, err := puzzle.Resolve()
	if err != nil {
		s.fail(c, err)
		return
	}

	report, err := s.svc.Solve(c.Request.Context(), start, goal)
	if err != nil {
		s.fail(c, err)
		return
	}
	hs, err := hints.Render(report.Solution, formatter)
	if err != nil {
		s.fail(c, err)
		return
	}

	outcome := "solved"
	if !report.Solution.Solvable {
		outcome = "unsolvable"
	}
	solveOutcomes.WithLabelValues(outcome, strconv.FormatBool(report.Cached)).Inc()

	c.JSON(http.StatusOK, SolveResponse{
		ReportID:    report.ID,
		Solvable:    report.Solution.Solvable,
		Steps:       report.Solution.NumMoves(),
		Crossings:   report.Solution.Crossings(),
		Explored:    report.Solution.Explored,
		Cached:      report.Cached,
		Fingerprint: report.Fingerprint,
		Path:        primitives.FromPath(report.Solution.Path),
		Moves:       primitives.FromMoves(report.Solution.Moves),
		Hints:       hs,
	})
}

// handleMoves handles POST /v1/moves.
func (s *Server) handleMoves(c *gin.Context) {
	var req MovesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abort(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	state, err := req.State.ToState()
	if err != nil {
		s.fail(c, err)
		return
	}

	ts := rc.Successors(state)
	resp := MovesResponse{Moves: make([]LegalMove, 0, len(ts))}
	for _, t := range ts {
		resp.Moves = append(resp.Moves, LegalMove{
			Move: primitives.FromMove(t.Move),
			Next: primitives.FromState(t.Next),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// handleGraph handles GET /v1/graph. It renders the states reachable from
// the standard start, with the shortest solution highlighted, as DOT.
func (s *Server) handleGraph(c *gin.Context) {
	dot, err := s.svc.Graph(c.Request.Context(), rc.Start(), rc.Goal())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

// handleReport handles GET /v1/reports/:id.
func (s *Server) handleReport(c *gin.Context) {
	report, err := s.svc.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	data, err := s.svc.ExportJSON(report)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// fail maps err to a status and error code.
func (s *Server) fail(c *gin.Context, err error) {
	status, code, outcome := http.StatusInternalServerError, "INTERNAL", "error"
	switch {
	case errors.Is(err, primitives.ErrMalformed), errors.Is(err, primitives.ErrUnknownCharacter):
		status, code, outcome = http.StatusBadRequest, "INVALID_REQUEST", "invalid"
	case errors.Is(err, rc.ErrInvalidState):
		status, code, outcome = http.StatusUnprocessableEntity, "INVALID_STATE", "invalid"
	case errors.Is(err, rc.ErrSearchExhausted):
		status, code, outcome = http.StatusInternalServerError, "SEARCH_EXHAUSTED", "exhausted"
	case errors.Is(err, core.ErrNotFound):
		status, code, outcome = http.StatusNotFound, "NOT_FOUND", "error"
	}
	if c.FullPath() == "/v1/solve" {
		solveOutcomes.WithLabelValues(outcome, "false").Inc()
	}

	var event *bolt.Event
	if status >= http.StatusInternalServerError {
		event = s.logger.Error()
	} else {
		event = s.logger.Warn()
	}
	logging.NewEvent(event).
		Add(logging.Component("server")).
		Add(logging.RequestID(getOrCreateRequestID(c))).
		Add(logging.Str("code", code)).
		Add(logging.ErrorField(err)).
		Msg("request failed")

	s.abort(c, status, code, err.Error())
}
