package costing

import (
	"errors"
	"strings"
)

// ErrUnknownProduct is returned when the SKU handed to Cost is not in the
// catalog at all. Dangling references deeper in a recipe degrade to warnings
// instead; only the top-level entry point is strict.
var ErrUnknownProduct = errors.New("unknown product")

// CycleError reports a component cycle in the catalog. This is a
// data-integrity fault: a partial cost must never be presented as
// authoritative pricing, so the rollup fails hard instead of truncating.
type CycleError struct {
	// Path is the chain of SKUs from the top-level product to the repeated
	// reference, ending with the SKU that closed the cycle.
	Path []string
}

func (e *CycleError) Error() string {
	return "component cycle detected: " + strings.Join(e.Path, " -> ")
}
