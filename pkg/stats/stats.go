// Package stats computes summary statistics over a value sequence at a fixed
// binary precision. Sum and mean share one pass over the values, the standard
// deviation makes a second pass around the mean, and the median runs an
// independent selection on a copy of the sequence.
package stats

import (
	"math/big"

	"github.com/hyp3rd/ewrap"
	"github.com/wangjohn/quickselect"

	"github.com/hyp3rd/arith/internal/sentinel"
	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/values"
)

// Result is a computed statistic.
type Result struct {
	Kind  selection.Kind
	Value *big.Float
}

// Report holds every requested statistic of a run, in output order.
type Report struct {
	Count    int      // values the statistics were computed over
	Rejected int      // input lines that were skipped
	Results  []Result // sum, mean, median, sd; only the requested ones
}

// Get returns the value computed for kind, if it was requested.
func (r *Report) Get(kind selection.Kind) (*big.Float, bool) {
	for _, res := range r.Results {
		if res.Kind == kind {
			return res.Value, true
		}
	}

	return nil, false
}

// Compute returns the statistics in set for the values in seq.
// It fails with sentinel.ErrNoValues when seq is empty.
func Compute(seq *values.Sequence, set selection.Set, prec uint) (*Report, error) {
	vals := seq.Values()
	if len(vals) == 0 {
		return nil, sentinel.ErrNoValues
	}

	computed := make(map[selection.Kind]*big.Float, len(set.Kinds()))

	if set.NeedsMoments() {
		sum := Sum(vals, prec)
		mean := meanOf(sum, len(vals), prec)

		computed[selection.Sum] = sum
		computed[selection.Mean] = mean

		if set.Has(selection.SD) {
			computed[selection.SD] = stdDevAround(vals, mean, prec)
		}
	}

	if set.Has(selection.Median) {
		median, err := Median(seq.Clone(), prec)
		if err != nil {
			return nil, err
		}

		computed[selection.Median] = median
	}

	report := &Report{Count: len(vals), Results: make([]Result, 0, len(computed))}
	for _, kind := range set.Kinds() {
		report.Results = append(report.Results, Result{Kind: kind, Value: computed[kind]})
	}

	return report, nil
}

// Sum returns the left-to-right sum of vals.
func Sum(vals []*big.Float, prec uint) *big.Float {
	sum := newFloat(prec)
	for _, v := range vals {
		sum.Add(sum, v)
	}

	return sum
}

// Mean returns the arithmetic mean of vals.
func Mean(vals []*big.Float, prec uint) (*big.Float, error) {
	if len(vals) == 0 {
		return nil, sentinel.ErrNoValues
	}

	return meanOf(Sum(vals, prec), len(vals), prec), nil
}

// StdDev returns the population standard deviation of vals: the square root of
// the mean squared deviation from the mean, dividing by N.
func StdDev(vals []*big.Float, prec uint) (*big.Float, error) {
	mean, err := Mean(vals, prec)
	if err != nil {
		return nil, err
	}

	return stdDevAround(vals, mean, prec), nil
}

// Median returns the middle value of vals. For an even count it is the average
// of the two central values. The order of vals is changed.
func Median(vals []*big.Float, prec uint) (*big.Float, error) {
	n := len(vals)
	if n == 0 {
		return nil, sentinel.ErrNoValues
	}

	// upper is the sorted index of the middle value (odd n) or of the upper
	// central value (even n); selecting the upper+1 smallest values is enough.
	upper := n / 2

	err := quickselect.QuickSelect(byValue(vals), upper+1)
	if err != nil {
		return nil, ewrap.Wrap(err, "median selection")
	}

	top, second := largestTwo(vals[:upper+1])
	if n%2 == 1 {
		return newFloat(prec).Set(top), nil
	}

	median := newFloat(prec).Add(top, second)

	return median.Quo(median, big.NewFloat(2)), nil
}

func meanOf(sum *big.Float, n int, prec uint) *big.Float {
	count := newFloat(prec).SetInt64(int64(n))

	return newFloat(prec).Quo(sum, count)
}

func stdDevAround(vals []*big.Float, mean *big.Float, prec uint) *big.Float {
	sqDiffSum := newFloat(prec)
	diff := newFloat(prec)
	sq := newFloat(prec)

	for _, v := range vals {
		diff.Sub(v, mean)
		sq.Mul(diff, diff)
		sqDiffSum.Add(sqDiffSum, sq)
	}

	variance := sqDiffSum.Quo(sqDiffSum, newFloat(prec).SetInt64(int64(len(vals))))

	return newFloat(prec).Sqrt(variance)
}

// largestTwo returns the largest and second largest of vals, duplicates counted.
// second is nil when vals holds a single value.
func largestTwo(vals []*big.Float) (top, second *big.Float) {
	for _, v := range vals {
		switch {
		case top == nil:
			top = v
		case v.Cmp(top) > 0:
			second, top = top, v
		case second == nil || v.Cmp(second) > 0:
			second = v
		}
	}

	return top, second
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToNearestEven)
}

// byValue orders values numerically for quickselect.
type byValue []*big.Float

func (b byValue) Len() int           { return len(b) }
func (b byValue) Less(i, j int) bool { return b[i].Cmp(b[j]) < 0 }
func (b byValue) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
