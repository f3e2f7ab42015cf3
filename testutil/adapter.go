package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/primitives"
	"github.com/comalice/rivercrossing/internal/server"
)

// SolverAdapter provides a common interface over the ways a solve can be
// run. This allows running the same test suite against the library, the
// service and the HTTP API.
type SolverAdapter interface {
	Solve(ctx context.Context, start, goal rc.State) (rc.Solution, error)
}

// DirectAdapter calls a rivercrossing.Solver.
type DirectAdapter struct {
	solver *rc.Solver
}

// NewDirectAdapter creates an adapter over solver.
func NewDirectAdapter(solver *rc.Solver) *DirectAdapter {
	return &DirectAdapter{solver: solver}
}

func (a *DirectAdapter) Solve(ctx context.Context, start, goal rc.State) (rc.Solution, error) {
	if err := ctx.Err(); err != nil {
		return rc.Solution{}, err
	}
	return a.solver.FindSolution(start, goal)
}

// ServiceAdapter goes through a core.Service.
type ServiceAdapter struct {
	svc *core.Service
}

// NewServiceAdapter creates an adapter over svc.
func NewServiceAdapter(svc *core.Service) *ServiceAdapter {
	return &ServiceAdapter{svc: svc}
}

func (a *ServiceAdapter) Solve(ctx context.Context, start, goal rc.State) (rc.Solution, error) {
	report, err := a.svc.Solve(ctx, start, goal)
	if err != nil {
		return rc.Solution{}, err
	}
	return report.Solution, nil
}

// HTTPAdapter posts to /v1/solve on an in-process server.
type HTTPAdapter struct {
	handler http.Handler
}

// NewHTTPAdapter creates an adapter serving svc without rate limiting.
func NewHTTPAdapter(svc *core.Service) *HTTPAdapter {
	return &HTTPAdapter{handler: server.New(svc, server.Config{}).Handler()}
}

func (a *HTTPAdapter) Solve(ctx context.Context, start, goal rc.State) (rc.Solution, error) {
	startCfg, goalCfg := primitives.FromState(start), primitives.FromState(goal)
	body, err := json.Marshal(server.SolveRequest{State: &startCfg, Goal: &goalCfg})
	if err != nil {
		return rc.Solution{}, err
	}
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/v1/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		var e server.ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &e)
		return rc.Solution{}, fmt.Errorf("status %d: %s: %s", rec.Code, e.Code, e.Error)
	}
	var resp server.SolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return rc.Solution{}, err
	}

	sol := rc.Solution{Solvable: resp.Solvable, Explored: resp.Explored}
	if !resp.Solvable {
		return sol, nil
	}
	sol.Path = make([]rc.State, 0, len(resp.Path))
	for _, sc := range resp.Path {
		s, err := sc.ToState()
		if err != nil {
			return rc.Solution{}, err
		}
		sol.Path = append(sol.Path, s)
	}
	sol.Moves = make([]rc.Move, 0, len(resp.Moves))
	for _, mc := range resp.Moves {
		m, err := mc.ToMove()
		if err != nil {
			return rc.Solution{}, err
		}
		sol.Moves = append(sol.Moves, m)
	}
	return sol, nil
}
