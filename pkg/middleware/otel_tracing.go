package middleware

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/arith"
	"github.com/hyp3rd/arith/internal/telemetry/attrs"
	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/stats"
)

// OTelTracingMiddleware wraps arith.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   arith.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next arith.Service, tracer trace.Tracer, opts ...OTelTracingOption) arith.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Summarize implements Service.Summarize with tracing.
func (mw OTelTracingMiddleware) Summarize(ctx context.Context, r io.Reader) (*stats.Report, error) {
	ctx, span := mw.startSpan(ctx, "arith.Summarize", attribute.String(attrs.AttrSelection, mw.next.Selection().String()))
	defer span.End()

	report, err := mw.next.Summarize(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return report, err
	}

	span.SetAttributes(
		attribute.Int(attrs.AttrValuesCount, report.Count),
		attribute.Int(attrs.AttrRejectedCount, report.Rejected),
	)

	return report, nil
}

// Selection returns the selection of the next middleware.
func (mw OTelTracingMiddleware) Selection() selection.Set {
	return mw.next.Selection()
}

func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	all := make([]attribute.KeyValue, 0, len(mw.commonAttrs)+len(attributes))
	all = append(all, mw.commonAttrs...)
	all = append(all, attributes...)

	return mw.tracer.Start(ctx, name, trace.WithAttributes(all...))
}
