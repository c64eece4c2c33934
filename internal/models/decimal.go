// ABOUTME: One-decimal formatting for weights, heights and BMI.
// ABOUTME: Rounds the shortest decimal form half away from zero.
package models

import (
	"math"
	"strconv"
	"strings"
)

// OneDecimal formats v with exactly one fractional digit. Rounding is
// done on the shortest decimal representation of v, so 64.25 becomes
// "64.3" and 0.15 becomes "0.2". Non-finite values yield "N/A".
func OneDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole, frac, _ := strings.Cut(strconv.FormatFloat(v, 'f', -1, 64), ".")
	if len(frac) <= 1 {
		if frac == "" {
			frac = "0"
		}
		return sign + whole + "." + frac
	}

	digits := []byte(whole + frac[:1])
	if frac[1] >= '5' {
		digits = increment(digits)
	}
	out := string(digits[:len(digits)-1]) + "." + string(digits[len(digits)-1:])
	if out == "0.0" {
		return out
	}
	return sign + out
}

// increment adds one to a string of decimal digits.
func increment(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
