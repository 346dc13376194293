package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// UseCaseExecutionsMetric counts use case executions by use case and outcome.
const UseCaseExecutionsMetric = "item.usecase.executions"

// OutcomeOK is the outcome recorded for a successful execution.
const OutcomeOK = "ok"

// UseCaseInstruments traces and counts application use case executions.
// Spans are named "item.<UseCase>"; the counter carries usecase and outcome
// attributes.
type UseCaseInstruments struct {
	tracer     trace.Tracer
	executions metric.Int64Counter
}

// NewUseCaseInstruments builds the instruments from the global providers.
// Call it after Setup so exports reach the configured backends. A counter
// that cannot be created is reported to the OTel error handler and replaced
// by a no-op so use cases keep running.
func NewUseCaseInstruments(scope string) *UseCaseInstruments {
	return NewUseCaseInstrumentsWith(otel.GetTracerProvider(), otel.GetMeterProvider(), scope)
}

// NewUseCaseInstrumentsWith builds the instruments from explicit providers.
func NewUseCaseInstrumentsWith(tp trace.TracerProvider, mp metric.MeterProvider, scope string) *UseCaseInstruments {
	counter, err := mp.Meter(scope).Int64Counter(
		UseCaseExecutionsMetric,
		metric.WithDescription("Item use case executions by outcome"),
		metric.WithUnit("{execution}"),
	)
	if err != nil {
		otel.Handle(err)
		counter = noop.Int64Counter{}
	}
	return &UseCaseInstruments{tracer: tp.Tracer(scope), executions: counter}
}

// Start opens the span for one execution of usecase.
func (u *UseCaseInstruments) Start(ctx context.Context, usecase string) (context.Context, trace.Span) {
	return u.tracer.Start(ctx, "item."+usecase, trace.WithSpanKind(trace.SpanKindInternal))
}

// Finish records outcome on span, counts the execution and ends span.
// A non-nil err marks the span as failed.
func (u *UseCaseInstruments) Finish(ctx context.Context, span trace.Span, usecase, outcome string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	span.SetAttributes(attribute.String("item.usecase.outcome", outcome))
	u.executions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("usecase", usecase),
		attribute.String("outcome", outcome),
	))
	span.End()
}
