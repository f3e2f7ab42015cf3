package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/hints"
	"github.com/comalice/rivercrossing/internal/production"
)

func newTestServer(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	svc := core.NewService(
		core.WithRegistry(core.NewMemoryRegistry(16)),
		core.WithVisualizer(&production.DefaultVisualizer{}),
	)
	return New(svc, cfg).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, Config{}), http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestServer(t, Config{})
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestPuzzle(t *testing.T) {
	rec := do(t, newTestServer(t, Config{}), http.MethodGet, "/v1/puzzle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PuzzleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Farmer", "Wolf", "Sheep", "Cabbage"}, resp.Start.LeftBank)
	assert.Equal(t, "right", resp.Goal.BoatPosition)
	assert.Equal(t, 2, resp.Capacity)
}

func TestSolveFromBrowserState(t *testing.T) {
	h := newTestServer(t, Config{})
	body := `{"state":{"leftBank":["农夫","狼","羊","白菜"],"rightBank":[],"boatPosition":"left","boatPassengers":[]},"format":"icons"}`

	rec := do(t, h, http.MethodPost, "/v1/solve", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Solvable)
	assert.Equal(t, 23, resp.Steps)
	assert.Equal(t, 7, resp.Crossings)
	assert.Equal(t, 59, resp.Explored)
	assert.False(t, resp.Cached)
	assert.Len(t, resp.Path, 24)
	assert.Len(t, resp.Moves, 23)
	require.Len(t, resp.Hints, 24)
	assert.Equal(t, hints.KindHeader, resp.Hints[0].Kind)
	assert.Equal(t, "🐑 ➜ 🚣", resp.Hints[1].Action)

	again := do(t, h, http.MethodPost, "/v1/solve", body)
	require.Equal(t, http.StatusOK, again.Code)
	var cached SolveResponse
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &cached))
	assert.True(t, cached.Cached)
	assert.Equal(t, resp.ReportID, cached.ReportID)

	report := do(t, h, http.MethodGet, "/v1/reports/"+resp.ReportID, "")
	require.Equal(t, http.StatusOK, report.Code, report.Body.String())
	assert.Contains(t, report.Body.String(), resp.Fingerprint)
}

func TestSolveUnsolvable(t *testing.T) {
	body := `{"state":{"leftBank":["wolf","cabbage"],"rightBank":["farmer","sheep"],"boatPosition":"left","boatPassengers":[]}}`
	rec := do(t, newTestServer(t, Config{}), http.MethodPost, "/v1/solve", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Solvable)
	assert.Equal(t, -1, resp.Steps)
	require.Len(t, resp.Hints, 1)
	assert.Equal(t, "no solution found", resp.Hints[0].Text)
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"not json", `{`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing state", `{}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad format", `{"state":{"leftBank":["farmer","wolf","sheep","cabbage"],"boatPosition":"left"},"format":"morse"}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown name", `{"state":{"leftBank":["farmer","wolf","sheep","dragon"],"boatPosition":"left"}}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unsupervised", `{"state":{"leftBank":["wolf","sheep"],"rightBank":["farmer","cabbage"],"boatPosition":"right"}}`, http.StatusUnprocessableEntity, "INVALID_STATE"},
		{"bad goal", `{"state":{"leftBank":["farmer","wolf","sheep","cabbage"],"boatPosition":"left"},"goal":{"leftBank":["sheep","cabbage"],"rightBank":["farmer","wolf"],"boatPosition":"right"}}`, http.StatusUnprocessableEntity, "INVALID_STATE"},
	}
	h := newTestServer(t, Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/solve", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			resp := decodeError(t, rec)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestSolveSearchExhausted(t *testing.T) {
	capped := rc.NewSolver(rc.WithMaxIterations(3))
	h := New(core.NewService(core.WithSolver(capped)), Config{}).Handler()
	body := `{"state":{"leftBank":["farmer","wolf","sheep","cabbage"],"boatPosition":"left"}}`
	rec := do(t, h, http.MethodPost, "/v1/solve", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SEARCH_EXHAUSTED", decodeError(t, rec).Code)
}

func TestMoves(t *testing.T) {
	body := `{"state":{"leftBank":["farmer","wolf","sheep","cabbage"],"rightBank":[],"boatPosition":"left","boatPassengers":[]}}`
	rec := do(t, newTestServer(t, Config{}), http.MethodPost, "/v1/moves", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp MovesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Moves, 3)
	assert.Equal(t, "Wolf", resp.Moves[0].Move.Character)
	assert.Equal(t, "boat", resp.Moves[0].Move.To)
	assert.Equal(t, []string{"Wolf"}, resp.Moves[0].Next.BoatPassengers)
}

func TestGraph(t *testing.T) {
	rec := do(t, newTestServer(t, Config{}), http.MethodGet, "/v1/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "digraph RiverCrossing {"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/vnd.graphviz")
}

func TestReportNotFound(t *testing.T) {
	rec := do(t, newTestServer(t, Config{}), http.MethodGet, "/v1/reports/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestServer(t, Config{}), http.MethodGet, "/v2/anything", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, Config{RateLimit: 1, Burst: 1})
	first := do(t, h, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(t, h, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, second).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, Config{})
	do(t, h, http.MethodGet, "/v1/health", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rivercrossing_http_requests_total")
}
