// Package scale adjusts ingredient quantities and nutrition values to a
// requested serving count.
package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRatio is returned for negative or non-finite serving ratios.
var ErrInvalidRatio = errors.New("invalid serving ratio")

// ParseError reports a base quantity whose amount is neither a decimal
// number nor a simple n/d fraction.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse quantity %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot parse quantity %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// fractionLadder snaps sub-unit fraction results. The first threshold the
// value does not exceed wins; anything above the last one renders as 3/4.
var fractionLadder = []struct {
	limit float64
	text  string
}{
	{0.25, "1/4"},
	{0.33, "1/3"},
	{0.5, "1/2"},
	{0.67, "2/3"},
}

// remainders maps the quarter remainder of a fraction result >= 1. The
// lookup is first-match-wins, so 0.5 renders as 1/3 and 0.75 as 2/3.
var remainders = []struct {
	values []float64
	text   string
}{
	{[]float64{0.25}, "1/4"},
	{[]float64{0.33, 0.5}, "1/3"},
	{[]float64{0.5}, "1/2"},
	{[]float64{0.67, 0.75}, "2/3"},
	{[]float64{0.75}, "3/4"},
}

// Scale multiplies the amount of a "<amount> <unit>" quantity by ratio and
// renders it back in kitchen notation. The unit is optional and never changed.
func Scale(baseQuantity string, ratio float64) (string, error) {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	amount, unit, _ := strings.Cut(strings.TrimSpace(baseQuantity), " ")
	if amount == "" {
		return "", &ParseError{Input: baseQuantity, Reason: "missing amount"}
	}

	var rendered string
	if strings.Contains(amount, "/") {
		v, err := parseFraction(baseQuantity, amount)
		if err != nil {
			return "", err
		}
		rendered = formatFraction(v * ratio)
	} else {
		v, err := parseAmount(baseQuantity, amount)
		if err != nil {
			return "", err
		}
		rendered = formatDecimal(v * ratio)
	}

	return strings.TrimSpace(rendered + " " + strings.TrimSpace(unit)), nil
}

func parseAmount(input, s string) (float64, error) {
	if !isDecimal(s) {
		return 0, &ParseError{Input: input, Reason: "amount is not a number"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: input, Reason: "amount is not a number", Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, &ParseError{Input: input, Reason: "amount out of range"}
	}
	return v, nil
}

// isDecimal accepts an optional minus sign, digits and at most one point.
// Hex, exponent, underscore and Inf/NaN spellings are rejected.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, dot := 0, false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

func parseFraction(input, s string) (float64, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, &ParseError{Input: input, Reason: "malformed fraction"}
	}
	num, err := parseAmount(input, parts[0])
	if err != nil {
		return 0, err
	}
	den, err := parseAmount(input, parts[1])
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, &ParseError{Input: input, Reason: "zero denominator"}
	}
	return num / den, nil
}

func formatFraction(raw float64) string {
	if raw < 1 {
		for _, step := range fractionLadder {
			if raw <= step.limit {
				return step.text
			}
		}
		return "3/4"
	}

	q := math.Round(raw*4) / 4
	whole := math.Floor(q)
	rem := q - whole
	if rem == 0 {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}

	var frac string
	for _, r := range remainders {
		for _, v := range r.values {
			if rem == v {
				frac = r.text
				break
			}
		}
		if frac != "" {
			break
		}
	}
	if whole > 0 {
		return strconv.FormatFloat(whole, 'f', -1, 64) + " " + frac
	}
	return frac
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
