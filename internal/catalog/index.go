// Package catalog provides an indexed, read-only view over the product and
// material tables supplied by the surrounding data-access layer. The tables
// arrive already loaded in memory; this package only builds lookup structures
// over them, it never loads or persists anything itself.
package catalog

import (
	"sort"

	"github.com/google/uuid"

	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

// Index is the lookup view the matcher and costing engine work against.
// It holds pointers into the slices it was built from; callers must not
// mutate those slices while the index is in use.
type Index struct {
	bySKU      map[string]*model.Product
	materials  map[uuid.UUID]*model.Material
	masterSKUs []string // sorted, for deterministic longest-prefix scans
}

// NewIndex builds an Index over the supplied tables.
func NewIndex(products []model.Product, materials []model.Material) *Index {
	idx := &Index{
		bySKU:     make(map[string]*model.Product, len(products)),
		materials: make(map[uuid.UUID]*model.Material, len(materials)),
	}
	for i := range products {
		p := &products[i]
		idx.bySKU[p.SKU] = p
		idx.masterSKUs = append(idx.masterSKUs, p.SKU)
	}
	for i := range materials {
		m := &materials[i]
		idx.materials[m.ID] = m
	}
	sort.Strings(idx.masterSKUs)
	return idx
}

// ProductBySKU returns the product with the given master SKU, or nil.
func (idx *Index) ProductBySKU(sku string) *model.Product {
	return idx.bySKU[sku]
}

// MaterialByID returns the material with the given id, or nil.
func (idx *Index) MaterialByID(id uuid.UUID) *model.Material {
	return idx.materials[id]
}

// MasterSKUs returns all master SKUs in ascending order.
func (idx *Index) MasterSKUs() []string {
	return idx.masterSKUs
}

// Len reports the number of indexed products.
func (idx *Index) Len() int { return len(idx.bySKU) }
