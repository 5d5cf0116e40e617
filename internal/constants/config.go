// Package constants defines default configuration values for arith.
// It provides the standard output precision, the accumulation precision
// and the names of the supported output formats.
package constants

import "math/big"

const (
	// DefaultDigits is the number of fractional digits rendered before trailing zeros are trimmed.
	DefaultDigits = 18
	// MaxDigits is the largest accepted number of fractional digits.
	MaxDigits = 100
	// DefaultPrecision is the mantissa width, in bits, used to hold and accumulate values.
	// 64 bits matches the x87 extended format behind a C long double.
	DefaultPrecision uint = 64
	// MaxPrecision is the largest accepted mantissa width.
	MaxPrecision uint = big.MaxPrec
	// DefaultInitialCapacity is the starting capacity of a value sequence.
	DefaultInitialCapacity = 2
	// EnvPrefix is the prefix of the environment variables overriding CLI flags.
	EnvPrefix = "ARITH"
	// ServiceName identifies the process in telemetry.
	ServiceName = "arith"

	// TextFormat is the plain `name: value` output format.
	TextFormat = "text"
	// JSONFormat is the JSON output format.
	JSONFormat = "json"
	// MsgpackFormat is the MessagePack output format.
	MsgpackFormat = "msgpack"
	// CBORFormat is the CBOR output format.
	CBORFormat = "cbor"
)
