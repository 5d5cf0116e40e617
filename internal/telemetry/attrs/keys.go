// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrSelection is the comma-separated list of statistics a run computes.
	AttrSelection = "selection"
	// AttrValuesCount is the number of values the statistics were computed over.
	AttrValuesCount = "values.count"
	// AttrRejectedCount is the number of input lines skipped as not numeric.
	AttrRejectedCount = "values.rejected"
	// AttrOutcome is "ok" or "error".
	AttrOutcome = "outcome"
)
