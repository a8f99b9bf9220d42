// Package costing computes manufactured-product costs by walking the bill of
// materials recursively, and nothing else: no I/O, no shared state. Every
// call starts from the supplied catalog and settings, so callers may rerun it
// on every keystroke of a metal-price field.
package costing

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/nosvasedis/iliosDB-sub004/internal/catalog"
	"github.com/nosvasedis/iliosDB-sub004/internal/codes"
	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Engine binds one catalog view to one settings snapshot. It is cheap to
// construct; build a fresh one whenever the metal price changes.
type Engine struct {
	idx      *catalog.Index
	settings model.GlobalSettings
}

func NewEngine(idx *catalog.Index, settings model.GlobalSettings) *Engine {
	return &Engine{idx: idx, settings: settings}
}

// Cost computes the full breakdown for one unit of the product with the given
// master SKU, as the variant identified by variantSuffix (empty string for
// the master/base variant). Plating labor is selected by the suffix's finish
// token; a registered variant's manual cost override, when set, replaces the
// computed total.
//
// The memo map and the on-path cycle guard live for exactly one call. Reusing
// them across calls would leak a stale metal price into later results, and
// the cycle guard must fire on every call, not only the first.
func (e *Engine) Cost(sku, variantSuffix string) (Breakdown, error) {
	if err := e.settings.Validate(); err != nil {
		return Breakdown{}, fmt.Errorf("settings: %w", err)
	}
	p := e.idx.ProductBySKU(sku)
	if p == nil {
		return Breakdown{}, fmt.Errorf("product %s: %w", sku, ErrUnknownProduct)
	}

	memo := make(map[string]Breakdown)
	onPath := make(map[string]bool)
	b, err := e.rollup(p, memo, onPath, nil)
	if err != nil {
		return Breakdown{}, err
	}

	if d := codes.DecodeSuffix(variantSuffix, p.Gender); d.Finish != nil {
		if plating, ok := platingCosts[d.Finish.Code]; ok {
			b.Labor = b.Labor.Add(plating)
			b.Total = b.Total.Add(plating)
		}
	}
	if v := p.Variant(variantSuffix); v != nil && v.CostOverride != nil {
		b.Total = *v.CostOverride
	}
	return b, nil
}

// CostBatch computes breakdowns for several SKUs as master/base variants.
// Each entry gets its own memo, per the one-call cache lifetime rule; batch
// results therefore match the one-at-a-time results exactly.
func (e *Engine) CostBatch(skus []string) (map[string]Breakdown, error) {
	out := make(map[string]Breakdown, len(skus))
	for _, sku := range skus {
		b, err := e.Cost(sku, "")
		if err != nil {
			return nil, fmt.Errorf("cost %s: %w", sku, err)
		}
		out[sku] = b
	}
	return out, nil
}

// rollup walks one node of the recipe tree depth-first. memo caches finished
// sub-products within this call; onPath holds the SKUs of the active
// recursion path and trips the cycle guard; path is the same chain in order,
// kept only for the error message.
func (e *Engine) rollup(p *model.Product, memo map[string]Breakdown, onPath map[string]bool, path []string) (Breakdown, error) {
	if b, ok := memo[p.SKU]; ok {
		return b, nil
	}
	if onPath[p.SKU] {
		return Breakdown{}, &CycleError{Path: append(append([]string{}, path...), p.SKU)}
	}
	onPath[p.SKU] = true
	path = append(path, p.SKU)

	var b Breakdown

	// Own metal, never inherited from children.
	lossFactor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(e.settings.LossPercentage).Div(hundred))
	b.Silver = decimal.NewFromFloat(p.TotalWeightG()).Mul(e.settings.MetalPriceGram).Mul(lossFactor)

	// Own labor. Plating is variant-dependent and added at the top level.
	b.Labor = p.Labor.Casting.Add(p.Labor.Setting).Add(technicianCost(p))

	for _, item := range p.Recipe {
		switch it := item.(type) {
		case model.RawItem:
			m := e.idx.MaterialByID(it.MaterialID)
			if m == nil {
				b.Warnings = append(b.Warnings, fmt.Sprintf("%s: material %s not in table, counted as zero", p.SKU, it.MaterialID))
				log.Warn().Str("sku", p.SKU).Str("material_id", it.MaterialID.String()).Msg("recipe references unknown material")
				continue
			}
			cost := m.UnitCost.Mul(decimal.NewFromFloat(it.Quantity))
			b.Materials = b.Materials.Add(cost)
			if m.Type == model.MaterialStone {
				b.Stones = append(b.Stones, StoneDetail{
					MaterialID: m.ID,
					Name:       m.Name,
					Quantity:   it.Quantity,
					Cost:       cost,
				})
			}

		case model.ComponentItem:
			sub := e.idx.ProductBySKU(it.SKU)
			if sub == nil {
				b.Warnings = append(b.Warnings, fmt.Sprintf("%s: component %s not in catalog, counted as zero", p.SKU, it.SKU))
				log.Warn().Str("sku", p.SKU).Str("component", it.SKU).Msg("recipe references unknown component")
				continue
			}
			sb, err := e.rollup(sub, memo, onPath, path)
			if err != nil {
				return Breakdown{}, err
			}
			qty := decimal.NewFromFloat(it.Quantity)
			// The sub-assembly arrives already fabricated, so its full
			// cost, labor included, is a material from this node's point
			// of view.
			b.Materials = b.Materials.Add(sb.Total.Mul(qty))
			for _, s := range sb.Stones {
				s.Quantity *= it.Quantity
				s.Cost = s.Cost.Mul(qty)
				b.Stones = append(b.Stones, s)
			}
			b.Warnings = append(b.Warnings, sb.Warnings...)
		}
	}

	delete(onPath, p.SKU)

	b.Total = b.Silver.Add(b.Labor).Add(b.Materials)
	memo[p.SKU] = b
	return b, nil
}
