package matcher

import "strings"

// Label printers substitute Greek capitals with their Latin homoglyphs so the
// barcode charset stays Code-39 safe. Scanners configured with a Greek layout
// hand the Greek forms back. The mapping is reversible glyph-for-glyph, so
// normalizing to the Latin canonical charset loses nothing.
var greekHomoglyphs = map[rune]rune{
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Ζ': 'Z', 'Η': 'H', 'Ι': 'I',
	'Κ': 'K', 'Μ': 'M', 'Ν': 'N', 'Ο': 'O', 'Ρ': 'P', 'Τ': 'T',
	'Υ': 'Y', 'Χ': 'X',
}

// Normalize maps raw scanned/typed input to the grammar's canonical charset:
// trimmed, upper-cased, Greek homoglyphs folded to Latin.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return strings.Map(func(r rune) rune {
		if latin, ok := greekHomoglyphs[r]; ok {
			return latin
		}
		return r
	}, s)
}
