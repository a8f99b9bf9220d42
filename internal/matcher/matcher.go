// Package matcher resolves user-facing input — scanned barcode text, freehand
// SKU entry — into catalog entries, and expands compact SKU-range syntax.
package matcher

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/nosvasedis/iliosDB-sub004/internal/catalog"
	"github.com/nosvasedis/iliosDB-sub004/internal/codes"
	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

// ErrNotFound is returned when a scanned/typed code matches no catalog entry.
// Callers decide whether that means "bad scan" or "new, unregistered code".
var ErrNotFound = errors.New("no catalog entry matches the scanned code")

// Match is a resolved scan. Variant is nil when the code resolved to the
// master/base variant with no zero-suffix row on file, or when the suffix is
// not yet registered on the product (Decoded still interprets it).
type Match struct {
	Product *model.Product
	Variant *model.ProductVariant
	Suffix  string
	Decoded codes.Decoded
}

// FindByScannedCode resolves raw input against the catalog. Tried in order:
//
//  1. exact master SKU + registered variant suffix
//  2. master SKU alone (master/base variant)
//  3. longest master-SKU prefix, remainder decoded as a suffix even when no
//     such variant is on file — freshly printed labels reach the scanner
//     before the variant row does
func FindByScannedCode(raw string, idx *catalog.Index) (*Match, error) {
	code := Normalize(raw)
	if code == "" {
		return nil, ErrNotFound
	}

	// 1. Registered variant, longest master prefix wins when several match.
	if m := matchRegisteredVariant(code, idx); m != nil {
		return m, nil
	}

	// 2. Master SKU alone.
	if p := idx.ProductBySKU(code); p != nil {
		return &Match{
			Product: p,
			Variant: p.Variant(""),
			Decoded: codes.DecodeSuffix("", p.Gender),
		}, nil
	}

	// 3. Longest master prefix with an unregistered suffix.
	if p, suffix := longestMasterPrefix(code, idx); p != nil {
		return &Match{
			Product: p,
			Suffix:  suffix,
			Decoded: codes.DecodeSuffix(suffix, p.Gender),
		}, nil
	}

	log.Debug().Str("code", code).Msg("scan matched no catalog entry")
	return nil, ErrNotFound
}

func matchRegisteredVariant(code string, idx *catalog.Index) *Match {
	var best *Match
	for _, sku := range idx.MasterSKUs() {
		ok, suffix := codes.IsVariantOf(code, sku)
		if !ok {
			continue
		}
		p := idx.ProductBySKU(sku)
		v := p.Variant(suffix)
		if v == nil {
			continue
		}
		if best == nil || len(sku) > len(best.Product.SKU) {
			best = &Match{
				Product: p,
				Variant: v,
				Suffix:  suffix,
				Decoded: codes.DecodeSuffix(suffix, p.Gender),
			}
		}
	}
	return best
}

func longestMasterPrefix(code string, idx *catalog.Index) (*model.Product, string) {
	var (
		best       *model.Product
		bestSuffix string
	)
	for _, sku := range idx.MasterSKUs() {
		ok, suffix := codes.IsVariantOf(code, sku)
		if !ok {
			continue
		}
		if best == nil || len(sku) > len(best.SKU) {
			best = idx.ProductBySKU(sku)
			bestSuffix = suffix
		}
	}
	return best, bestSuffix
}
