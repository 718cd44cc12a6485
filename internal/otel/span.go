// Package otel provides span helpers and the attribute keys shared by contentsync's traces.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys used across the application
const (
	AttrTrigger      = attribute.Key("sync.trigger")
	AttrAttemptID    = attribute.Key("sync.attempt_id")
	AttrState        = attribute.Key("sync.state")
	AttrHitServer    = attribute.Key("sync.hit_server")
	AttrCollection   = attribute.Key("content.collection")
	AttrResultCount  = attribute.Key("result.count")
	AttrReachability = attribute.Key("network.reachable")
)

// StartSpan starts a new span if the tracer is non-nil, otherwise returns the span already
// in ctx (a no-op span when there is none).
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records err on span and marks it failed. The status description stays generic;
// the error itself is kept in the span event.
func RecordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}
