package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when a form field does not hold a number.
var ErrNotANumber = errors.New("not a number")

// ParseField converts raw field text to a float. Text that is not a number
// yields NaN together with an error wrapping ErrNotANumber, so callers may
// either propagate the NaN or stop on the error. Out of range values keep
// their signed infinity and are not an error.
func ParseField(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return math.NaN(), fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return value, nil
}

// FormatNumber renders a value the way the result area shows it:
// shortest decimal form, exponent form below 1e-6 or from 1e21 up,
// "NaN", "Infinity" or "-Infinity".
func FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0"
	case math.Abs(value) < 1e-6 || math.Abs(value) >= 1e21:
		return formatExponent(value)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatExponent writes 1e-7 rather than Go's 1e-07.
func formatExponent(value float64) string {
	s := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
