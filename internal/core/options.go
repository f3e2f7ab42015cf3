package core

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	rc "github.com/comalice/rivercrossing"
)

// WithSolver configures the Service with a custom Solver.
func WithSolver(solver *rc.Solver) Option {
	return func(s *Service) {
		if solver != nil {
			s.solver = solver
		}
	}
}

// WithRegistry configures the Service with a Registry for caching reports.
func WithRegistry(r Registry) Option {
	return func(s *Service) {
		s.registry = r
	}
}

// WithPersister configures the Service with a Persister for Export and Load.
func WithPersister(p Persister) Option {
	return func(s *Service) {
		s.persister = p
	}
}

// WithPublisher configures the Service with an EventPublisher.
func WithPublisher(pb EventPublisher) Option {
	return func(s *Service) {
		s.publisher = pb
	}
}

// WithVisualizer configures the Service with a Visualizer.
func WithVisualizer(v Visualizer) Option {
	return func(s *Service) {
		s.visualizer = v
	}
}

// WithLogger configures the Service logger.
func WithLogger(l *bolt.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
