package observe

import (
	"context"
	"time"
)

// PhaseFunc runs one cache phase.
type PhaseFunc func(ctx context.Context, phase Phase) error

// Middleware wraps cache phases with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap returns a PhaseFunc safe for concurrent use if fn is.
//   - Context: the phase span is carried in the context passed to fn.
//   - Errors: errors from fn are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil arguments disable the
// corresponding signal.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps fn with a span, a duration metric and a log line.
func (m *Middleware) Wrap(fn PhaseFunc) PhaseFunc {
	return func(ctx context.Context, phase Phase) error {
		if err := phase.Validate(); err != nil {
			return err
		}

		ctx, span := m.tracer.StartPhase(ctx, phase)
		start := time.Now()

		err := fn(ctx, phase)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordPhase(ctx, phase, duration, err)

		fields := []Field{
			{Key: "phase", Value: phase.Name},
			{Key: "iteration", Value: phase.Iteration},
			{Key: "vertices", Value: phase.Vertices},
			{Key: "duration_ms", Value: durationMs(duration)},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			m.logger.Error(ctx, "cache phase failed", fields...)
		} else {
			m.logger.Info(ctx, "cache phase completed", fields...)
		}

		return err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
