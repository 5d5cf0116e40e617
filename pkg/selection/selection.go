// Package selection parses the comma-separated list of statistics requested on the
// command line into an immutable Set.
package selection

import (
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/internal/sentinel"
)

// Kind is a single statistic that can be requested.
type Kind uint8

// Constants for the statistics arith knows how to compute.
const (
	Sum    Kind = 1 << iota // arithmetic sum
	Mean                    // arithmetic mean
	SD                      // population standard deviation
	Median                  // median
)

// allName selects every statistic.
const allName = "all"

// All is the Set holding every supported statistic.
const All = Set(Sum | Mean | SD | Median)

// outputOrder is the fixed order statistics are reported in, regardless of request order.
//
//nolint:gochecknoglobals
var outputOrder = []Kind{Sum, Mean, Median, SD}

// String returns the name of the statistic as accepted by Parse.
func (k Kind) String() string {
	switch k {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case SD:
		return "sd"
	case Median:
		return "median"
	default:
		return "unknown"
	}
}

// Set is a set of statistic kinds.
type Set uint8

// Default returns the selection used when none is supplied.
func Default() Set { return All }

// Has reports whether k is part of the set.
func (s Set) Has(k Kind) bool { return s&Set(k) != 0 }

// IsEmpty reports whether the set selects nothing.
func (s Set) IsEmpty() bool { return s == 0 }

// NeedsMoments reports whether the sum/mean pass has to run, either because sum or
// mean were asked for or because the standard deviation depends on the mean.
func (s Set) NeedsMoments() bool { return s.Has(Sum) || s.Has(Mean) || s.Has(SD) }

// Kinds returns the selected kinds in output order: sum, mean, median, sd.
func (s Set) Kinds() []Kind {
	kinds := make([]Kind, 0, len(outputOrder))
	for _, k := range outputOrder {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// String returns the selected names joined by commas, in output order.
func (s Set) String() string {
	names := make([]string, 0, len(outputOrder))
	for _, k := range s.Kinds() {
		names = append(names, k.String())
	}

	return strings.Join(names, ",")
}

// Names returns the names of the supported statistics, in the order the usage text lists them.
func Names() []string {
	names := make([]string, 0, len(outputOrder))
	for _, k := range outputOrder {
		names = append(names, k.String())
	}

	return names
}

// Parse converts a comma-separated list of statistic names into a Set.
// The wildcard "all" selects every statistic. Any unknown name, including an
// empty element, fails with sentinel.ErrUnknownStatistic.
func Parse(token string) (Set, error) {
	var set Set

	for name := range strings.SplitSeq(token, ",") {
		kind, err := lookup(name)
		if err != nil {
			return 0, err
		}

		set |= kind
	}

	return set, nil
}

func lookup(name string) (Set, error) {
	switch name {
	case allName:
		return All, nil
	case Sum.String():
		return Set(Sum), nil
	case Mean.String():
		return Set(Mean), nil
	case SD.String():
		return Set(SD), nil
	case Median.String():
		return Set(Median), nil
	default:
		return 0, ewrap.Wrapf(sentinel.ErrUnknownStatistic, "%q", name)
	}
}
