package costing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Breakdown is the cost of one unit of a product. All figures carry full
// decimal precision; round only at presentation via Rounded, otherwise
// rounding error compounds across recursive levels.
type Breakdown struct {
	// Silver is the metal cost: own weight x spot price x loss factor.
	Silver decimal.Decimal
	// Labor is the node's own per-operation cost (casting, setting,
	// technician, plating). Sub-assembly labor never lands here; it is
	// folded into Materials along with the rest of the sub-assembly's cost.
	Labor decimal.Decimal
	// Materials covers raw materials plus fully-costed sub-assemblies.
	Materials decimal.Decimal
	// Total = Silver + Labor + Materials, unless a manual variant cost
	// override replaced it (the component fields keep the computed values
	// so the override can be compared against them on screen).
	Total decimal.Decimal

	// Stones itemizes stone-type materials, own and from sub-assemblies,
	// for the offer-sheet "stones included" line.
	Stones []StoneDetail
	// Warnings flags data-quality problems (dangling references) that were
	// counted as zero cost instead of failing the rollup.
	Warnings []string
}

// StoneDetail is one stone-type material line within a breakdown.
type StoneDetail struct {
	MaterialID uuid.UUID
	Name       string
	Quantity   float64
	Cost       decimal.Decimal
}

// Rounded returns a presentation copy with every money figure rounded to
// 2 decimal places.
func (b Breakdown) Rounded() Breakdown {
	out := b
	out.Silver = b.Silver.Round(2)
	out.Labor = b.Labor.Round(2)
	out.Materials = b.Materials.Round(2)
	out.Total = b.Total.Round(2)
	out.Stones = make([]StoneDetail, len(b.Stones))
	for i, s := range b.Stones {
		s.Cost = s.Cost.Round(2)
		out.Stones[i] = s
	}
	return out
}
