package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	crore    = decimal.NewFromInt(10000000)
	lakh     = decimal.NewFromInt(100000)
	thousand = decimal.NewFromInt(1000)
)

// FormatINRCompact formats an amount in the Indian compact notation used
// across the dashboard.
// Example: 100000 returns "₹1.0L"
// Example: 15000000 returns "₹1.5Cr"
// Example: 4500 returns "₹4.5K"
func FormatINRCompact(amount decimal.Decimal) string {
	neg := ""
	if amount.IsNegative() {
		neg = "-"
		amount = amount.Abs()
	}
	switch {
	case amount.GreaterThanOrEqual(crore):
		return fmt.Sprintf("%s₹%sCr", neg, amount.Div(crore).StringFixed(1))
	case amount.GreaterThanOrEqual(lakh):
		return fmt.Sprintf("%s₹%sL", neg, amount.Div(lakh).StringFixed(1))
	case amount.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("%s₹%sK", neg, amount.Div(thousand).StringFixed(1))
	}
	return fmt.Sprintf("%s₹%s", neg, amount.Round(0).String())
}

// FormatINR formats an amount with the rupee sign and no decimals.
func FormatINR(amount decimal.Decimal) string {
	return fmt.Sprintf("₹%s", amount.Round(0).String())
}
