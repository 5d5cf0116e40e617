// Package format renders statistic values as minimal fixed-point decimals.
package format

import (
	"math/big"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/internal/constants"
	"github.com/hyp3rd/arith/internal/sentinel"
)

// Decimal renders v in fixed notation with the given number of fractional digits,
// then trims trailing zeros and, if nothing is left after it, the decimal point.
// 4.000000000000000000 becomes "4" and 4.500000000000000000 becomes "4.5".
func Decimal(v *big.Float, digits int) string {
	return Trim(v.Text('f', digits))
}

// Trim removes trailing fractional zeros from a fixed-point number and drops the
// decimal point when the fraction becomes empty. Integers are returned unchanged.
func Trim(num string) string {
	if !strings.Contains(num, ".") {
		return num
	}

	num = strings.TrimRight(num, "0")

	return strings.TrimSuffix(num, ".")
}

// ValidateDigits checks that digits is a usable number of fractional digits.
func ValidateDigits(digits int) error {
	if digits < 0 || digits > constants.MaxDigits {
		return ewrap.Wrapf(sentinel.ErrInvalidDigits, "%d is outside [0, %d]", digits, constants.MaxDigits)
	}

	return nil
}
