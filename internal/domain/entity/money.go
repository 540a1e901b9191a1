package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
)

// Monetary values are carried as int64 cents internally and rendered as
// strings with two decimal places at the API boundary. Point amounts (PTs)
// and naira amounts share the same representation.

// ParseAmount converts a decimal string like "100", "100.5" or "100.50" to
// cents. Negative amounts and more than two decimal places are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, amount)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}

	switch len(frac) {
	case 0:
		frac = "00"
	case 1:
		frac += "0"
	case 2:
		// already two decimal places
	default:
		return 0, fmt.Errorf("%w: at most two decimal places", errs.ErrInvalidAmount)
	}

	if whole == "" {
		whole = "0"
	}

	cents, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		if strings.Contains(err.Error(), "out of range") {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, amount)
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two decimal places.
// 51000 becomes "510.00", 5 becomes "0.05".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MultiplyCents scales cents by factor, rounding half away from zero to the
// nearest cent. Used for the earn-rate boost so the result matches a decimal
// multiplication rounded to two places.
func MultiplyCents(cents int64, factor float64) int64 {
	return int64(math.Round(float64(cents) * factor))
}
