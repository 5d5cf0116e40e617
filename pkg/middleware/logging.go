// Package middleware provides various middleware implementations for the arith service.
// This package includes logging middleware that wraps the service to provide
// execution time logging, plus OpenTelemetry tracing and metrics middlewares.
package middleware

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hyp3rd/arith"
	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/stats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, but should work with any other logger that matches the interface.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the arith.Service interface.
type LoggingMiddleware struct {
	next   arith.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next arith.Service, logger Logger) arith.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Summarize logs the time it takes to execute the next middleware and the size of the result.
func (mw LoggingMiddleware) Summarize(ctx context.Context, r io.Reader) (*stats.Report, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Summarize took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Summarize method invoked with selection: %s", mw.next.Selection())

	report, err := mw.next.Summarize(ctx, r)
	if err != nil {
		mw.logger.Printf("Summarize failed: %v", err)

		return report, err
	}

	mw.logger.Printf("summarized %s values, %s lines rejected",
		humanize.Comma(int64(report.Count)), humanize.Comma(int64(report.Rejected)))

	return report, nil
}

// Selection returns the selection of the next middleware.
func (mw LoggingMiddleware) Selection() selection.Set {
	return mw.next.Selection()
}
