package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// GlobalSettings are the workshop-wide parameters every cost rollup depends
// on. They are supplied by the surrounding data layer and may change between
// calls (the metal spot price in particular), so nothing derived from them is
// ever cached across calls.
type GlobalSettings struct {
	// MetalPriceGram is the current silver spot price per gram.
	MetalPriceGram decimal.Decimal
	// LossPercentage inflates metal weight to account for production waste
	// (casting sprues, polishing dust).
	LossPercentage float64 `validate:"gte=0,lte=100"`
}

var validate = validator.New()

// Validate re-checks the settings invariants. Shape validation happens in the
// data layer, but a negative loss factor or metal price would silently corrupt
// every rollup, so the costing engine calls this on entry.
func (s GlobalSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.MetalPriceGram.IsNegative() {
		return ErrNegativeMetalPrice
	}
	return nil
}
