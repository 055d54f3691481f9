package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/aocsearch"

// StartSpan opens a span named after the solved puzzle.
func StartSpan(ctx context.Context, puzzle string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{attribute.String("puzzle", puzzle)}, attrs...)
	return otel.Tracer(tracerName).Start(ctx, "aocsearch.solve."+puzzle, trace.WithAttributes(attrs...))
}

// EndSpan records err (if any) and the answer, then ends span.
func EndSpan(span trace.Span, answer int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("answer", answer))
	}
	span.End()
}
