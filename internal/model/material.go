package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialType classifies a raw material. Stone-type materials are itemized
// separately in cost breakdowns for reporting.
type MaterialType string

const (
	MaterialStone MaterialType = "Stone"
	MaterialMetal MaterialType = "Metal"
	MaterialOther MaterialType = "Other"
)

// Material is a purchasable raw input (stone, chain, finding, packaging).
type Material struct {
	ID       uuid.UUID
	Name     string
	Unit     string
	Type     MaterialType
	UnitCost decimal.Decimal
}
