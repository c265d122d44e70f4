package models

import "math"

// RoundCents rounds a monetary amount to two decimal places. Totals and
// subtotals always pass through here so stored and read-back values agree.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
