package solrq

import (
	"math"
	"strconv"
	"strings"
)

// formatBoost writes f the way a double is usually printed by search clients: whole numbers keep ".0",
// and large or tiny magnitudes switch to scientific notation (1.0E7).
func formatBoost(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(f, 'f', -1, 64))
	}

	// Go gives 1.2345678E+08, we want 1.2345678E8.
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	n, _ := strconv.Atoi(exp)

	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
