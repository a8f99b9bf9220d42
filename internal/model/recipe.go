package model

import "github.com/google/uuid"

// RecipeItem is one line of a product's bill of materials: either a raw
// material draw or a reference to another manufactured product. The interface
// is sealed so a type switch over RawItem/ComponentItem is exhaustive by
// construction.
//
// Component edges across the whole catalog must form an acyclic graph for
// cost rollup to terminate. Nothing here enforces that at build time; the
// costing engine checks it on every call.
type RecipeItem interface {
	isRecipeItem()
}

// RawItem consumes Quantity units of a raw material per one unit of the
// owning product.
type RawItem struct {
	MaterialID uuid.UUID
	Quantity   float64
}

// ComponentItem consumes Quantity units of another catalog product
// (a sub-assembly) per one unit of the owning product.
type ComponentItem struct {
	SKU      string
	Quantity float64
}

func (RawItem) isRecipeItem()       {}
func (ComponentItem) isRecipeItem() {}
