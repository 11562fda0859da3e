// Package core holds the ledger domain: transactions, the command grammar,
// amount parsing and the summary aggregation used by the status reply.
//
// This file parses amount tokens like "2.8M", "500K" or "2800000" into
// whole currency units.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts an amount token to whole currency units.
//
// A token is a decimal number with an optional case-insensitive suffix:
// K multiplies by 1,000 and M by 1,000,000. Plain integers are taken
// literally. Thousands separators and a leading currency sign are ignored.
// Fractional results from the multiplier are rounded half up.
//
// Examples:
//
//	ParseAmount("2.8M")    -> 2800000, nil
//	ParseAmount("500k")    -> 500000, nil
//	ParseAmount("2800000") -> 2800000, nil
//	ParseAmount("-5K")     -> 0, ErrInvalidAmount
func ParseAmount(token string) (int64, error) {
	s := strings.TrimSpace(token)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₩")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(strings.ToUpper(s), "M"):
		multiplier = 1_000_000
		s = s[:len(s)-1]
	case strings.HasSuffix(strings.ToUpper(s), "K"):
		multiplier = 1_000
		s = s[:len(s)-1]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		// Bare "." with a suffix or alone
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxInt64 = 1<<63 - 1
	if multiplier > 1 && iv > maxInt64/multiplier {
		return 0, ErrInvalidAmount
	}
	units := iv * multiplier

	if fracPart != "" {
		// Cap precision well past anything the multiplier can resolve.
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		num, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		var den int64 = 1
		for range fracPart {
			den *= 10
		}
		// Half-up rounding of fracNum/den scaled by the multiplier.
		frac := (num*multiplier + den/2) / den
		if units > maxInt64-frac {
			return 0, ErrInvalidAmount
		}
		units += frac
	}

	return units, nil
}
