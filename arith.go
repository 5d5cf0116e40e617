// Package arith reads numeric values, one per line, and computes a selectable set of
// summary statistics over them: sum, arithmetic mean, median and population
// standard deviation.
//
// The pipeline is linear. A selection is fixed before any input is read, the whole
// stream is parsed into an in-memory sequence, and the statistics are computed at
// an extended binary precision once the stream is exhausted:
//
//	engine, err := arith.NewEngine(arith.WithSelection(selection.All))
//	report, err := engine.Summarize(ctx, os.Stdin)
package arith

import (
	"context"
	"io"

	"github.com/hyp3rd/arith/internal/constants"
	"github.com/hyp3rd/arith/pkg/parser"
	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/stats"
	"github.com/hyp3rd/arith/pkg/values"
)

// Engine runs the parse and compute stages of a summary.
// An Engine holds no state between runs.
type Engine struct {
	selection       selection.Set     // statistics to compute
	prec            uint              // mantissa bits of every value and accumulator
	initialCapacity int               // starting capacity of the value sequence
	onReject        parser.RejectFunc // called for every rejected input line
}

// NewEngine returns an engine configured with the given options. The defaults are
// every statistic, a 64-bit mantissa and an initial capacity of 2.
func NewEngine(options ...Option) (*Engine, error) {
	engine := &Engine{
		selection:       selection.Default(),
		prec:            constants.DefaultPrecision,
		initialCapacity: constants.DefaultInitialCapacity,
	}

	ApplyOptions(engine, options...)

	err := engine.validate()
	if err != nil {
		return nil, err
	}

	return engine, nil
}

// Summarize reads r to the end and computes the selected statistics.
// Rejected lines are reported to the reject handler and counted in the report.
// It fails with sentinel.ErrNoValues when no line was accepted.
func (engine *Engine) Summarize(_ context.Context, r io.Reader) (*stats.Report, error) {
	seq, err := values.NewSequence(engine.initialCapacity)
	if err != nil {
		return nil, err
	}
	defer seq.Reset()

	summary, err := parser.New(engine.prec, engine.onReject).Parse(r, seq)
	if err != nil {
		return nil, err
	}

	seq.Compact()

	report, err := stats.Compute(seq, engine.selection, engine.prec)
	if err != nil {
		return nil, err
	}

	report.Rejected = summary.Rejected

	return report, nil
}

// Selection returns the statistics the engine computes.
func (engine *Engine) Selection() selection.Set { return engine.selection }

// Precision returns the mantissa width, in bits, values are held at.
func (engine *Engine) Precision() uint { return engine.prec }
