package model

import "errors"

// ErrNegativeMetalPrice reports a metal spot price below zero in
// GlobalSettings.
var ErrNegativeMetalPrice = errors.New("metal price per gram cannot be negative")
