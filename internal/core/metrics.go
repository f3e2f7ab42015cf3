package core

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	rc "github.com/comalice/rivercrossing"
)

var (
	tracer = otel.Tracer("rivercrossing.core")
	meter  = otel.Meter("rivercrossing.core")
)

var (
	solveLatency   metric.Float64Histogram
	solveTotal     metric.Int64Counter
	statesExplored metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"rivercrossing_solve_duration_seconds",
			metric.WithDescription("Duration of solve calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"rivercrossing_solve_total",
			metric.WithDescription("Total number of solve calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		statesExplored, err = meter.Int64Histogram(
			"rivercrossing_states_explored",
			metric.WithDescription("States dequeued per uncached search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordSolveMetrics(ctx context.Context, d time.Duration, explored int, cached, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.Bool("cached", cached),
	)
	solveLatency.Record(ctx, d.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)
	if success && !cached {
		statesExplored.Record(ctx, int64(explored))
	}
}

func startSolveSpan(ctx context.Context, start, goal rc.State) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Service.Solve",
		trace.WithAttributes(
			attribute.String("solve.start", start.Key()),
			attribute.String("solve.goal", goal.Key()),
		),
	)
}

func setSolveSpanResult(span trace.Span, r Report) {
	span.SetAttributes(
		attribute.String("solve.report_id", r.ID),
		attribute.Bool("solve.solvable", r.Solution.Solvable),
		attribute.Int("solve.steps", r.Solution.NumMoves()),
		attribute.Int("solve.explored", r.Solution.Explored),
		attribute.Bool("solve.cached", r.Cached),
	)
}
