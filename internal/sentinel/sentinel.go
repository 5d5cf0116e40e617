// Package sentinel provides standardized error definitions for arith.
// This package centralizes all error types used across the arith components,
// ensuring consistent error handling and messaging throughout the application.
//
// The errors defined here fall into three groups:
// - Configuration errors (unknown statistic, unknown output format, bad digits or precision)
// - Parse errors (a single input line that is not a number)
// - Result errors (no usable value was read)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrUnknownStatistic is returned when the selection names a statistic that is not supported.
	ErrUnknownStatistic = ewrap.New("unknown statistic")

	// ErrInvalidNumber is returned when an input line cannot be parsed as a finite real number.
	ErrInvalidNumber = ewrap.New("invalid number")

	// ErrNoValues is returned when the input stream yields zero usable values.
	ErrNoValues = ewrap.New("no usable values")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when an output format is not registered.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrInvalidDigits is returned when the number of fractional digits is out of range.
	ErrInvalidDigits = ewrap.New("invalid fractional digits")

	// ErrInvalidPrecision is returned when the mantissa precision is zero or too large.
	ErrInvalidPrecision = ewrap.New("invalid precision")

	// ErrInvalidSetting is returned when a flag or environment override cannot be converted to its type.
	ErrInvalidSetting = ewrap.New("invalid setting")

	// ErrInvalidCapacity is returned when the initial capacity of a value sequence is not positive.
	ErrInvalidCapacity = ewrap.New("capacity must be positive")

	// ErrReadInput is returned when the input stream fails with anything other than EOF.
	ErrReadInput = ewrap.New("failed to read input")
)
