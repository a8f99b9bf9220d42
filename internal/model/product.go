package model

import (
	"github.com/shopspring/decimal"
)

// Gender scopes the variant-code vocabulary. Men and Women carry different
// stone codes; Unisex products resolve against both.
type Gender string

const (
	Men    Gender = "Men"
	Women  Gender = "Women"
	Unisex Gender = "Unisex"
)

// Product is a catalog entry keyed by its master SKU. Records are created and
// edited by catalog management outside this module; the core only reads them.
// IsComponent=true marks products usable only as sub-assemblies, never sold
// standalone (earring hooks, clasps, cast blanks).
type Product struct {
	SKU              string
	Category         string
	Gender           Gender
	WeightG          float64
	SecondaryWeightG *float64
	Recipe           []RecipeItem
	Labor            LaborCosts
	Variants         []ProductVariant
	IsComponent      bool
}

// TotalWeightG is the metal weight used for costing: the product's own weight
// plus the secondary piece (e.g. the second earring), never the children's.
func (p *Product) TotalWeightG() float64 {
	w := p.WeightG
	if p.SecondaryWeightG != nil {
		w += *p.SecondaryWeightG
	}
	return w
}

// Variant returns the registered variant with the given suffix, or nil.
// The empty suffix denotes the master/base variant and always resolves,
// whether or not a zero-suffix row is on file.
func (p *Product) Variant(suffix string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Suffix == suffix {
			return &p.Variants[i]
		}
	}
	return nil
}

// ProductVariant is one finish/stone combination of a master product.
// Suffix values are unique within a product's variant list. Nil overrides
// mean "inherit from the master product".
type ProductVariant struct {
	Suffix        string
	Description   string
	PriceOverride *decimal.Decimal
	CostOverride  *decimal.Decimal
}

// LaborCosts holds the fixed per-operation costs of one unit. Technician
// (finishing) cost is derived from weight via the standard schedule unless
// TechnicianOverride is set. Plating cost is not stored here: it depends on
// which finish token the active variant carries.
type LaborCosts struct {
	Casting            decimal.Decimal
	Setting            decimal.Decimal
	TechnicianOverride *decimal.Decimal
}
