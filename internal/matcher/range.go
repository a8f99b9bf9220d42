package matcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangePattern captures PREFIX<N1>-PREFIX<N2>: an alphabetic prefix, a
// numeral, a dash, the same shape again.
var rangePattern = regexp.MustCompile(`^([A-Z]+)(\d+)\s*-\s*([A-Z]+)(\d+)$`)

// maxRangeSpan bounds one expansion. A typo like "AB1-AB999999" should not
// allocate a million codes in a keystroke handler; oversized spans fall back
// to the literal result like any other malformed input.
const maxRangeSpan = 1000

// ExpandSKURange expands "DA100-DA103" into ["DA100" "DA101" "DA102" "DA103"],
// preserving the zero-padding width of the first numeral. Input that does not
// parse as a range — mismatched prefixes, descending bounds, oversized spans,
// or no dash at all — comes back as a single-element literal list. Downstream
// matching rejects genuinely invalid codes, so there is nothing to raise here.
func ExpandSKURange(text string) []string {
	literal := []string{strings.TrimSpace(text)}

	m := rangePattern.FindStringSubmatch(Normalize(text))
	if m == nil {
		return literal
	}
	prefix, fromStr, prefix2, toStr := m[1], m[2], m[3], m[4]
	if prefix != prefix2 {
		return literal
	}

	from, err1 := strconv.Atoi(fromStr)
	to, err2 := strconv.Atoi(toStr)
	if err1 != nil || err2 != nil || to < from || to-from+1 > maxRangeSpan {
		return literal
	}

	width := len(fromStr)
	out := make([]string, 0, to-from+1)
	for k := from; k <= to; k++ {
		out = append(out, fmt.Sprintf("%s%0*d", prefix, width, k))
	}
	return out
}
