package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places results are rounded to.
const DefaultPrecision = 10

// epsilon nudges values like 1.005 whose binary form sits just below the
// decimal midpoint.
const epsilon = 2.220446049250313e-16

// maxExact is the largest magnitude at which float64 still holds every integer.
const maxExact = 1 << 53

// Round rounds x to precision decimal places. Values whose scaled form has
// no fractional bits left are returned unchanged.
func Round(x float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	scale := math.Pow10(precision)
	scaled := (x + epsilon) * scale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) || math.Abs(scaled) >= maxExact {
		return x
	}
	return math.Round(scaled) / scale
}

// IsFloat reports whether x has a fractional part. Zero, values below one and
// infinities count as fractional because x mod trunc(x) is NaN for them.
func IsFloat(x float64) bool {
	return math.Mod(x, math.Trunc(x)) != 0
}

// Normalize rounds x only when it is non-integral.
func Normalize(x float64, precision int) float64 {
	if IsFloat(x) {
		return Round(x, precision)
	}
	return x
}

// Format renders x the way the calculator displays numbers.
func Format(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.IsNaN(x):
		return "NaN"
	case x == 0:
		return "0"
	case math.Abs(x) >= 1e21, math.Abs(x) < 1e-6:
		return exponent(strconv.FormatFloat(x, 'e', -1, 64))
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// exponent drops the zero padding strconv puts on exponents: 1e-07 is
// shown as 1e-7.
func exponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// ParseNumber converts operand text into a number. Text that does not parse,
// or parses to NaN, is not evaluable.
func ParseNumber(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, ErrNotANumber
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}
