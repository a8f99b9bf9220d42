// Package pricing derives suggested wholesale prices from cost breakdowns.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// The markup schedule agreed with the business: metalwork (silver + labor)
// and materials carry separate multipliers, banded by total metal weight.
// Heavier pieces take thinner margins because their silver share dominates.
var markupBands = []struct {
	maxWeightG float64
	metalwork  decimal.Decimal
	materials  decimal.Decimal
}{
	{5, decimal.RequireFromString("2.40"), decimal.RequireFromString("1.60")},
	{20, decimal.RequireFromString("2.10"), decimal.RequireFromString("1.50")},
	{math.Inf(1), decimal.RequireFromString("1.85"), decimal.RequireFromString("1.40")},
}

// SuggestWholesale maps a cost breakdown to a suggested wholesale price.
// Pure and O(1): callers rerun it over every visible line item on each
// keystroke of the metal-price field. Zero inputs yield zero, never NaN —
// there is no division anywhere in the formula.
func SuggestWholesale(totalWeightG float64, silverCost, laborCost, materialsCost decimal.Decimal) decimal.Decimal {
	for _, band := range markupBands {
		if totalWeightG <= band.maxWeightG {
			metalwork := silverCost.Add(laborCost).Mul(band.metalwork)
			return metalwork.Add(materialsCost.Mul(band.materials))
		}
	}
	return decimal.Zero
}
