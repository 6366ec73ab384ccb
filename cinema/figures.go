package cinema

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var crore = decimal.NewFromInt(10_000_000)

// ProfitPercentage is (collection - budget) / budget * 100 rounded to two
// places. A zero budget yields zero.
func ProfitPercentage(budget, collection decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}

	return collection.Sub(budget).Div(budget).Mul(decimal.NewFromInt(100)).Round(2)
}

func ToCrores(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(crore)
}

// FormatCrores renders an amount as "₹12.34 Cr". Unset amounts render as zero.
func FormatCrores(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "₹0 Cr"
	}

	return "₹" + ToCrores(amount.Decimal).StringFixed(2) + " Cr"
}

// FormatDuration renders minutes as "2h 35m"; unknown or zero is "-".
func FormatDuration(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return "-"
	}

	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60) //nolint:mnd
}

type ProfitTier string

const (
	TierHit       ProfitTier = "hit"
	TierProfit    ProfitTier = "profit"
	TierBreakEven ProfitTier = "break-even"
	TierLoss      ProfitTier = "loss"
)

var hitThreshold = decimal.NewFromInt(50)

// TierOf buckets a profit percentage: above 50 is a hit, above 0 a profit,
// below 0 a loss.
func TierOf(percentage decimal.Decimal) ProfitTier {
	switch {
	case percentage.GreaterThan(hitThreshold):
		return TierHit
	case percentage.IsPositive():
		return TierProfit
	case percentage.IsNegative():
		return TierLoss
	default:
		return TierBreakEven
	}
}

func containsFold(haystack, needle string) bool {
	return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
