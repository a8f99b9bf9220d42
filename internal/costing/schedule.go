package costing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

// Workshop rate cards. Versioned constants agreed with the workshop, revised
// together with the code tables, not at runtime.

// technicianSchedule maps metal weight to the finishing (technician) cost of
// one unit. Bands are inclusive upper bounds in grams.
var technicianSchedule = []struct {
	maxWeightG float64
	cost       decimal.Decimal
}{
	{5, decimal.RequireFromString("1.50")},
	{10, decimal.RequireFromString("2.50")},
	{20, decimal.RequireFromString("4.00")},
	{40, decimal.RequireFromString("6.50")},
	{math.Inf(1), decimal.RequireFromString("9.00")},
}

// platingCosts maps a finish-token code to the galvanic bath cost of one
// unit. Codes without an entry (and variants with no finish token) plate
// nothing and cost nothing.
var platingCosts = map[string]decimal.Decimal{
	"X":  decimal.RequireFromString("4.00"),
	"XB": decimal.RequireFromString("4.50"),
	"R":  decimal.RequireFromString("4.00"),
	"D":  decimal.RequireFromString("5.50"),
	"OX": decimal.RequireFromString("2.00"),
}

// technicianCost resolves the finishing cost for a product: the manual
// override when set, the weight schedule otherwise.
func technicianCost(p *model.Product) decimal.Decimal {
	if p.Labor.TechnicianOverride != nil {
		return *p.Labor.TechnicianOverride
	}
	w := p.TotalWeightG()
	for _, band := range technicianSchedule {
		if w <= band.maxWeightG {
			return band.cost
		}
	}
	return decimal.Zero
}
