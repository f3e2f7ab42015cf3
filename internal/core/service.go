// Package core runs solves on behalf of the CLI and the HTTP server.
//
// A Service wraps a rivercrossing.Solver with a result registry, concurrent
// de-duplication, tracing, metrics and pluggable adapters for persistence,
// event publishing and visualization. Adapters live in internal/production.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/logging"
	"github.com/comalice/rivercrossing/internal/primitives"
)

var (
	ErrNoPersister  = errors.New("no persister configured")
	ErrNoVisualizer = errors.New("no visualizer configured")
)

// Persister stores reports across process runs.
type Persister interface {
	Save(ctx context.Context, report Report) error
	Load(ctx context.Context, id string) (Report, error)
}

// EventPublisher receives one SolveEvent per Solve call.
type EventPublisher interface {
	Publish(ctx context.Context, event SolveEvent) error
	Close() error
}

// Visualizer renders state graphs and reports.
type Visualizer interface {
	ExportDOT(graph rc.StateGraph, path []rc.State) string
	ExportJSON(report Report) ([]byte, error)
}

// Report is the outcome of one solve plus its bookkeeping.
type Report struct {
	ID          string
	Start       rc.State
	Goal        rc.State
	Solution    rc.Solution
	Fingerprint string
	// Cached is true when the report came from the registry.
	Cached   bool
	SolvedAt time.Time
}

// SolveEvent describes one Solve call for publishers.
type SolveEvent struct {
	ReportID string
	Start    rc.State
	Goal     rc.State
	Solvable bool
	Steps    int
	Explored int
	Cached   bool
	Duration time.Duration
	Err      string
	At       time.Time
}

// Option applies configuration to a Service.
type Option func(*Service)

// Service runs solves. Safe for concurrent use.
type Service struct {
	solver     *rc.Solver
	registry   Registry
	publisher  EventPublisher
	persister  Persister
	visualizer Visualizer
	logger     *bolt.Logger
	now        func() time.Time

	flight singleflight.Group
}

// NewService creates a Service. Without options it solves with the default
// solver, caches nothing and logs nowhere.
func NewService(opts ...Option) *Service {
	s := &Service{
		solver: rc.NewSolver(),
		logger: logging.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solver returns the solver in use.
func (s *Service) Solver() *rc.Solver {
	return s.solver
}

// Solve finds a shortest path from start to goal.
//
// Identical concurrent requests share one search. Results, including
// "no solution" results, are kept in the registry when one is configured.
// Errors from the solver are returned unchanged so callers can match them
// with errors.Is.
func (s *Service) Solve(ctx context.Context, start, goal rc.State) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	ctx, span := startSolveSpan(ctx, start, goal)
	defer span.End()
	began := time.Now()

	key := Key{Start: start, Goal: goal}
	report, cached, err := s.lookupOrSolve(ctx, key)
	elapsed := time.Since(began)

	recordSolveMetrics(ctx, elapsed, report.Solution.Explored, cached, err == nil)
	s.publish(ctx, report, key, elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logging.NewEvent(s.logger.Warn()).
			Add(logging.Component("core")).
			Add(logging.Str("start", start.Key())).
			Add(logging.Str("goal", goal.Key())).
			Add(logging.ErrorField(err)).
			Msg("solve failed")
		return Report{}, err
	}

	setSolveSpanResult(span, report)
	logging.NewEvent(s.logger.Debug()).
		Add(logging.Component("core")).
		Add(logging.ReportID(report.ID)).
		Add(logging.Solvable(report.Solution.Solvable)).
		Add(logging.Steps(report.Solution.NumMoves())).
		Add(logging.Cached(cached)).
		Add(logging.Duration(elapsed)).
		Msg("solved")
	return report, nil
}

func (s *Service) lookupOrSolve(ctx context.Context, key Key) (Report, bool, error) {
	if s.registry != nil {
		if r, err := s.registry.Lookup(ctx, key); err == nil {
			r.Cached = true
			return cloneReport(r), true, nil
		}
	}

	v, err, _ := s.flight.Do(key.String(), func() (interface{}, error) {
		// Another caller may have finished while this one waited.
		if s.registry != nil {
			if r, err := s.registry.Lookup(ctx, key); err == nil {
				return r, nil
			}
		}

		sol, err := s.solver.FindSolution(key.Start, key.Goal)
		if err != nil {
			return nil, err
		}
		r := Report{
			ID:       uuid.NewString(),
			Start:    key.Start,
			Goal:     key.Goal,
			Solution: sol,
			SolvedAt: s.now().UTC(),
		}
		if sol.Solvable {
			r.Fingerprint = primitives.Fingerprint(sol.Path)
		}
		if s.registry != nil {
			if err := s.registry.Register(ctx, key, r); err != nil {
				logging.NewEvent(s.logger.Warn()).
					Add(logging.Component("core")).
					Add(logging.ErrorField(err)).
					Msg("registry rejected report")
			}
		}
		return r, nil
	})
	if err != nil {
		return Report{}, false, err
	}
	return cloneReport(v.(Report)), false, nil
}

func (s *Service) publish(ctx context.Context, r Report, key Key, elapsed time.Duration, err error) {
	if s.publisher == nil {
		return
	}
	ev := SolveEvent{
		ReportID: r.ID,
		Start:    key.Start,
		Goal:     key.Goal,
		Solvable: r.Solution.Solvable,
		Steps:    r.Solution.NumMoves(),
		Explored: r.Solution.Explored,
		Cached:   r.Cached,
		Duration: elapsed,
		At:       s.now().UTC(),
	}
	if err != nil {
		ev.Err = err.Error()
		ev.Steps = -1
	}
	if perr := s.publisher.Publish(ctx, ev); perr != nil {
		logging.NewEvent(s.logger.Warn()).
			Add(logging.Component("core")).
			Add(logging.ErrorField(perr)).
			Msg("publish solve event")
	}
}

// Graph solves start to goal and renders the graph reachable from start
// with the solution highlighted.
func (s *Service) Graph(ctx context.Context, start, goal rc.State) (string, error) {
	if s.visualizer == nil {
		return "", ErrNoVisualizer
	}
	report, err := s.Solve(ctx, start, goal)
	if err != nil {
		return "", err
	}
	g, err := rc.Explore(start)
	if err != nil {
		return "", err
	}
	return s.visualizer.ExportDOT(g, report.Solution.Path), nil
}

// ExportJSON renders a report with the configured visualizer.
func (s *Service) ExportJSON(report Report) ([]byte, error) {
	if s.visualizer == nil {
		return nil, ErrNoVisualizer
	}
	return s.visualizer.ExportJSON(report)
}

// Export saves a report with the configured persister.
func (s *Service) Export(ctx context.Context, report Report) error {
	if s.persister == nil {
		return ErrNoPersister
	}
	if err := s.persister.Save(ctx, report); err != nil {
		return fmt.Errorf("export report %s: %w", report.ID, err)
	}
	return nil
}

// Load reads a report saved by Export.
func (s *Service) Load(ctx context.Context, id string) (Report, error) {
	if s.persister == nil {
		return Report{}, ErrNoPersister
	}
	return s.persister.Load(ctx, id)
}

// Report finds a report by ID, first in the registry, then through the
// persister.
func (s *Service) Report(ctx context.Context, id string) (Report, error) {
	if s.registry != nil {
		if r, err := s.registry.ByID(ctx, id); err == nil {
			return r, nil
		}
	}
	if s.persister == nil {
		return Report{}, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return s.persister.Load(ctx, id)
}

// Close releases the publisher.
func (s *Service) Close() error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Close()
}

// cloneReport copies the slices of r so callers cannot alter registry
// entries.
func cloneReport(r Report) Report {
	if r.Solution.Path != nil {
		r.Solution.Path = append([]rc.State(nil), r.Solution.Path...)
	}
	if r.Solution.Moves != nil {
		r.Solution.Moves = append(make([]rc.Move, 0, len(r.Solution.Moves)), r.Solution.Moves...)
	}
	return r
}
