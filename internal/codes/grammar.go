// Package codes is the single source of truth for variant-suffix semantics.
// A suffix encodes at most one finish token followed by at most one stone
// token; anything left over is an opaque qualifier (size code, chain length)
// that is preserved but not interpreted.
package codes

import (
	"strings"

	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

// Decoded is the interpretation of a variant suffix. Finish and Stone are nil
// when the suffix carries no such token. Residual holds unclassified trailing
// characters; a non-empty Residual is not an error.
type Decoded struct {
	Finish   *Token
	Stone    *Token
	Residual string
}

// DecodeSuffix interprets suffix for the given gender. The empty suffix is
// the master/base variant and decodes to an all-nil result.
//
// Resolution order is finish first, then stone on the remainder. Where a code
// is valid in both vocabularies (e.g. "R") the finish reading wins. That
// tie-break is load-bearing for existing printed labels; do not reorder.
func DecodeSuffix(suffix string, gender model.Gender) Decoded {
	var d Decoded
	rest := suffix

	if t := longestPrefix(finishTokens, rest); t != nil {
		d.Finish = t
		rest = rest[len(t.Code):]
	}
	if t := longestPrefix(StoneTokens(gender), rest); t != nil {
		d.Stone = t
		rest = rest[len(t.Code):]
	}
	d.Residual = rest
	return d
}

// EncodeSuffix builds the canonical suffix for a finish/stone pair. Either
// token may be nil; both nil yields the empty (master/base) suffix.
func EncodeSuffix(finish, stone *Token) string {
	var b strings.Builder
	if finish != nil {
		b.WriteString(finish.Code)
	}
	if stone != nil {
		b.WriteString(stone.Code)
	}
	return b.String()
}

// DescribeSuffix returns a human-readable label for the decoded tokens, e.g.
// "Gold-plated, Ruby". ok is false when the suffix carries no recognized
// token at all (the residual alone never produces a description).
func DescribeSuffix(suffix string, gender model.Gender) (string, bool) {
	d := DecodeSuffix(suffix, gender)
	var parts []string
	if d.Finish != nil {
		parts = append(parts, d.Finish.Name)
	}
	if d.Stone != nil {
		parts = append(parts, d.Stone.Name)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

// IsVariantOf reports whether candidate is a variant code of master: it must
// begin with the exact master SKU and have a non-empty remainder. The
// remainder is returned as the suffix.
func IsVariantOf(candidate, master string) (bool, string) {
	if master == "" || !strings.HasPrefix(candidate, master) {
		return false, ""
	}
	suffix := candidate[len(master):]
	if suffix == "" {
		return false, ""
	}
	return true, suffix
}
