package arith

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/internal/constants"
	"github.com/hyp3rd/arith/internal/sentinel"
	"github.com/hyp3rd/arith/pkg/parser"
	"github.com/hyp3rd/arith/pkg/selection"
)

// Option is a function type that can be used to configure the `Engine` struct.
type Option func(*Engine)

// ApplyOptions applies the given options to the given engine.
func ApplyOptions(engine *Engine, options ...Option) {
	for _, option := range options {
		option(engine)
	}
}

// WithSelection is an option that sets the statistics the engine computes.
// An empty set falls back to every statistic.
func WithSelection(set selection.Set) Option {
	return func(engine *Engine) {
		if set.IsEmpty() {
			set = selection.Default()
		}

		engine.selection = set
	}
}

// WithPrecision is an option that sets the mantissa width, in bits, of parsed values and accumulators.
// The default of 64 bits matches an x87 extended long double.
func WithPrecision(prec uint) Option {
	return func(engine *Engine) {
		engine.prec = prec
	}
}

// WithInitialCapacity is an option that sets the starting capacity of the value sequence.
// The capacity doubles whenever it is exhausted.
func WithInitialCapacity(capacity int) Option {
	return func(engine *Engine) {
		engine.initialCapacity = capacity
	}
}

// WithRejectHandler is an option that sets the function called for every input line that is not a number.
func WithRejectHandler(onReject parser.RejectFunc) Option {
	return func(engine *Engine) {
		engine.onReject = onReject
	}
}

func (engine *Engine) validate() error {
	if engine.prec == 0 || engine.prec > constants.MaxPrecision {
		return ewrap.Wrapf(sentinel.ErrInvalidPrecision, "%d bits", engine.prec)
	}

	if engine.initialCapacity < 1 {
		return ewrap.Wrapf(sentinel.ErrInvalidCapacity, "initial capacity %d", engine.initialCapacity)
	}

	return nil
}
