package arith

import (
	"context"
	"io"

	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/stats"
)

// Service is the service interface for the summary engine.
// It enables middleware to be added to the service.
type Service interface {
	// Summarize reads every value from r and computes the selected statistics
	Summarize(ctx context.Context, r io.Reader) (*stats.Report, error)
	// Selection returns the statistics the service computes
	Selection() selection.Set
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
