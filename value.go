package cifmod

import (
	"math"
	"strconv"
	"strings"
)

// StripUncertainty removes the standard uncertainty that CIF appends to
// measured values in parentheses, e.g. "4.0094(2)" becomes "4.0094".
func StripUncertainty(value string) string {
	if i := strings.IndexByte(value, '('); i >= 0 {
		return value[:i]
	}
	return value
}

// Precision returns the number of digits after the decimal point of a
// numeric literal.
func Precision(value string) int {
	i := strings.LastIndexByte(value, '.')
	if i < 0 {
		return 0
	}
	return len(value) - i - 1
}

func formatValue(v float64, prec int, natural bool) string {
	if natural {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Digits of a float64 beyond which decimal rendering adds nothing.
const maxPrecision = 17

// formatInRange renders v, lo <= v < hi, such that the rendered value
// still lies in [lo, hi). Rounding to prec may hit hi or drop below lo,
// in which case the result is moved by one step of 10^-prec. If no value
// with prec decimals fits into the interval, more decimals are used.
func formatInRange(v, lo, hi float64, prec int) string {
	for p := prec; p <= maxPrecision; p++ {
		r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', p, 64), 64)
		if err != nil {
			break
		}
		switch {
		case r >= hi:
			r -= math.Pow10(-p)
		case r < lo:
			r += math.Pow10(-p)
		}
		s := strconv.FormatFloat(r, 'f', p, 64)
		if c, err := strconv.ParseFloat(s, 64); err == nil && c >= lo && c < hi {
			return s
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
