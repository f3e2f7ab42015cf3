package server

import (
	"github.com/comalice/rivercrossing/internal/hints"
	"github.com/comalice/rivercrossing/internal/primitives"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// PuzzleResponse is returned by GET /v1/puzzle.
type PuzzleResponse struct {
	Start      primitives.StateConfig `json:"start"`
	Goal       primitives.StateConfig `json:"goal"`
	Characters []string               `json:"characters"`
	Capacity   int                    `json:"capacity"`
}

// SolveRequest is the body of POST /v1/solve. Goal defaults to everyone on
// the right bank with the boat moored there. Format selects the hint
// wording: "plain" (default) or "icons".
type SolveRequest struct {
	State  *primitives.StateConfig `json:"state" binding:"required"`
	Goal   *primitives.StateConfig `json:"goal,omitempty"`
	Format string                  `json:"format,omitempty"`
}

// SolveResponse is returned by POST /v1/solve.
type SolveResponse struct {
	ReportID    string                   `json:"reportId"`
	Solvable    bool                     `json:"solvable"`
	Steps       int                      `json:"steps"`
	Crossings   int                      `json:"crossings"`
	Explored    int                      `json:"explored"`
	Cached      bool                     `json:"cached"`
	Fingerprint string                   `json:"fingerprint,omitempty"`
	Path        []primitives.StateConfig `json:"path"`
	Moves       []primitives.MoveConfig  `json:"moves"`
	Hints       []hints.Hint             `json:"hints"`
}

// MovesRequest is the body of POST /v1/moves.
type MovesRequest struct {
	State *primitives.StateConfig `json:"state" binding:"required"`
}

// LegalMove is one entry of MovesResponse.
type LegalMove struct {
	Move primitives.MoveConfig  `json:"move"`
	Next primitives.StateConfig `json:"next"`
}

// MovesResponse is returned by POST /v1/moves.
type MovesResponse struct {
	Moves []LegalMove `json:"moves"`
}
