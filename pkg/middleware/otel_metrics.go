package middleware

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/arith"
	"github.com/hyp3rd/arith/internal/telemetry/attrs"
	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/stats"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  arith.Service
	meter metric.Meter

	// instruments
	accepted  metric.Int64Counter
	rejected  metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next arith.Service, meter metric.Meter) (arith.Service, error) {
	accepted, err := meter.Int64Counter("arith.values.accepted")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	rejected, err := meter.Int64Counter("arith.values.rejected")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("arith.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, accepted: accepted, rejected: rejected, durations: durations}, nil
}

// Summarize implements Service.Summarize with metrics.
func (mw *OTelMetricsMiddleware) Summarize(ctx context.Context, r io.Reader) (*stats.Report, error) {
	start := time.Now()
	report, err := mw.next.Summarize(ctx, r)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	set := metric.WithAttributes(
		attribute.String(attrs.AttrSelection, mw.next.Selection().String()),
		attribute.String(attrs.AttrOutcome, outcome),
	)

	if report != nil {
		mw.accepted.Add(ctx, int64(report.Count), set)
		mw.rejected.Add(ctx, int64(report.Rejected), set)
	}

	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000.0, set)

	return report, err
}

// Selection returns the selection of the next middleware.
func (mw *OTelMetricsMiddleware) Selection() selection.Set {
	return mw.next.Selection()
}
