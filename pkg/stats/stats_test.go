package stats

import (
	"errors"
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/arith/internal/constants"
	"github.com/hyp3rd/arith/internal/sentinel"
	"github.com/hyp3rd/arith/pkg/selection"
	"github.com/hyp3rd/arith/pkg/values"
)

const prec = constants.DefaultPrecision

func sequenceOf(t *testing.T, input ...float64) *values.Sequence {
	t.Helper()

	seq, err := values.NewSequence(constants.DefaultInitialCapacity)
	if err != nil {
		t.Fatalf("NewSequence error: %v", err)
	}

	for _, v := range input {
		seq.Append(new(big.Float).SetPrec(prec).SetFloat64(v))
	}

	return seq
}

func toFloat(v *big.Float) float64 {
	f, _ := v.Float64()

	return f
}

func TestCompute_AllOneToFour(t *testing.T) {
	report, err := Compute(sequenceOf(t, 1, 2, 3, 4), selection.All, prec)
	assert.Nil(t, err)
	assert.Equal(t, 4, report.Count)

	kinds := make([]selection.Kind, 0, len(report.Results))
	for _, res := range report.Results {
		kinds = append(kinds, res.Kind)
	}

	assert.Equal(t, []selection.Kind{selection.Sum, selection.Mean, selection.Median, selection.SD}, kinds)

	sum, _ := report.Get(selection.Sum)
	mean, _ := report.Get(selection.Mean)
	median, _ := report.Get(selection.Median)
	sd, _ := report.Get(selection.SD)

	assert.Equal(t, 10.0, toFloat(sum))
	assert.Equal(t, 2.5, toFloat(mean))
	assert.Equal(t, 2.5, toFloat(median))
	assert.True(t, math.Abs(toFloat(sd)-1.118033988749895) < 1e-15)
	assert.Equal(t, "1.118033988749894848", sd.Text('f', 18))
}

func TestCompute_OnlyRequested(t *testing.T) {
	report, err := Compute(sequenceOf(t, 5), selection.Set(selection.Median), prec)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(report.Results))

	median, ok := report.Get(selection.Median)
	assert.True(t, ok)
	assert.Equal(t, 5.0, toFloat(median))

	_, ok = report.Get(selection.Sum)
	assert.False(t, ok)
}

func TestCompute_SDWithoutMean(t *testing.T) {
	report, err := Compute(sequenceOf(t, 2, 4, 4, 4, 5, 5, 7, 9), selection.Set(selection.SD), prec)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(report.Results))

	sd, ok := report.Get(selection.SD)
	assert.True(t, ok)
	assert.Equal(t, 2.0, toFloat(sd))
}

func TestCompute_Empty(t *testing.T) {
	report, err := Compute(sequenceOf(t), selection.All, prec)
	assert.True(t, errors.Is(err, sentinel.ErrNoValues))
	assert.True(t, report == nil)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "single", input: []float64{5}, expected: 5},
		{name: "two", input: []float64{4, 1}, expected: 2.5},
		{name: "three", input: []float64{9, 1, 5}, expected: 5},
		{name: "four", input: []float64{4, 3, 2, 1}, expected: 2.5},
		{name: "five", input: []float64{10, -3, 7, 0, 2}, expected: 2},
		{name: "six with duplicates", input: []float64{3, 1, 3, 3, 2, 8}, expected: 3},
		{name: "all equal", input: []float64{1.5, 1.5, 1.5, 1.5}, expected: 1.5},
		{name: "negative", input: []float64{-1, -2}, expected: -1.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			median, err := Median(sequenceOf(t, test.input...).Clone(), prec)
			assert.Nil(t, err)
			assert.Equal(t, test.expected, toFloat(median))
		})
	}
}

func TestMedian_Empty(t *testing.T) {
	_, err := Median(nil, prec)
	assert.True(t, errors.Is(err, sentinel.ErrNoValues))
}

func TestMedian_PermutationInvariant(t *testing.T) {
	input := []float64{12, 7, 3.25, 19, -4, 7, 0.5, 100, 42, 8, -11}
	expected, err := Median(sequenceOf(t, input...).Clone(), prec)
	assert.Nil(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		got, err := Median(sequenceOf(t, input...).Clone(), prec)
		assert.Nil(t, err)
		assert.Equal(t, 0, got.Cmp(expected))

		// drop one element to exercise the even branch as well
		even, err := Median(sequenceOf(t, input[1:]...).Clone(), prec)
		assert.Nil(t, err)
		assert.True(t, even != nil)
	}
}

func TestMedian_MatchesSortedCentralElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for n := 1; n <= 40; n++ {
		input := make([]float64, n)
		for i := range input {
			input[i] = float64(rng.IntN(20) - 10)
		}

		sorted := sequenceOf(t, input...).Clone()
		sortFloats(sorted)

		var expected *big.Float
		if n%2 == 1 {
			expected = sorted[(n-1)/2]
		} else {
			expected = new(big.Float).SetPrec(prec).Add(sorted[n/2-1], sorted[n/2])
			expected.Quo(expected, big.NewFloat(2))
		}

		got, err := Median(sequenceOf(t, input...).Clone(), prec)
		assert.Nil(t, err)

		if got.Cmp(expected) != 0 {
			t.Fatalf("n=%d: expected median %s, got %s", n, expected.String(), got.String())
		}
	}
}

func TestMeanIsSumOverCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for n := 1; n <= 25; n++ {
		input := make([]float64, n)
		for i := range input {
			input[i] = rng.Float64()*2000 - 1000
		}

		vals := sequenceOf(t, input...).Values()
		sum := Sum(vals, prec)
		mean, err := Mean(vals, prec)
		assert.Nil(t, err)

		ratio := new(big.Float).SetPrec(prec).Quo(sum, big.NewFloat(float64(n)))
		diff := new(big.Float).Sub(ratio, mean)
		assert.True(t, math.Abs(toFloat(diff)) < 1e-12)
	}
}

func TestStdDev(t *testing.T) {
	sd, err := StdDev(sequenceOf(t, 3, 3, 3).Values(), prec)
	assert.Nil(t, err)
	assert.Equal(t, 0, sd.Sign())

	sd, err = StdDev(sequenceOf(t, 7).Values(), prec)
	assert.Nil(t, err)
	assert.Equal(t, 0, sd.Sign())

	sd, err = StdDev(sequenceOf(t, 1, 1, 1, 1.0000001).Values(), prec)
	assert.Nil(t, err)
	assert.Equal(t, 1, sd.Sign())

	sd, err = StdDev(sequenceOf(t, -5, 5).Values(), prec)
	assert.Nil(t, err)
	assert.Equal(t, 5.0, toFloat(sd))

	_, err = StdDev(nil, prec)
	assert.True(t, errors.Is(err, sentinel.ErrNoValues))
}

func TestSum_ExtendedPrecision(t *testing.T) {
	// float64 accumulation loses the small terms entirely; a 64-bit mantissa keeps them.
	vals := sequenceOf(t, 1<<53, 1, 1, 1, 1).Values()
	sum := Sum(vals, prec)

	expected := new(big.Float).SetPrec(prec).SetInt64(1<<53 + 4)
	assert.Equal(t, 0, sum.Cmp(expected))
}

func sortFloats(vals []*big.Float) {
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j].Cmp(vals[j-1]) < 0; j-- {
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
}
