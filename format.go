package core

import (
	"fmt"
	"math"
)

// FormatCell renders a single tableau cell: a value
// within 1e-9 of an integer is rendered without a decimal point,
// otherwise with two decimal places, and a negative-zero result
// (e.g. from -0.001 rounding to "-0.00") is normalized to "0".
func FormatCell(v float64) string {
	if math.Abs(v-math.Round(v)) < 1e-9 {
		r := math.Round(v)
		if r == 0 {
			return "0"
		}
		return fmt.Sprintf("%d", int64(r))
	}
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0"
	}
	return s
}
