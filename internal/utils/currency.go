package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// FormatFromCents renders signed cents as a plain two-decimal string.
func FormatFromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ParseToCents parses a decimal amount string ("150", "150.5", "-42.50")
// into signed cents. Sub-cent precision is rejected.
func ParseToCents(amountStr string) (int64, error) {
	trimmed := strings.TrimSpace(amountStr)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	cents := d.Mul(decimal.New(constants.CentsPerUnit, 0))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount has more than two decimal places: %s", amountStr)
	}

	return cents.IntPart(), nil
}
