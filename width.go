package attrstyle

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how the display width of a grapheme cluster is measured
type WidthMethod int

const (
	// WidthWcwidth sums the wcwidth of each rune of a cluster, ignoring
	// variation selectors
	WidthWcwidth WidthMethod = iota
	// WidthNoZWJ measures with the Unicode rules, but a cluster joined with
	// zero width joiners is as wide as its parts together
	WidthNoZWJ
	// WidthUnicode measures with the Unicode rules
	WidthUnicode
)

const zwj = "\u200D"

// EachGrapheme calls fn with each grapheme cluster of s, in order, and its
// width measured with m
func EachGrapheme(s string, m WidthMethod, fn func(grapheme string, width int)) {
	state := -1
	cluster := ""
	w := 0
	for s != "" {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		fn(cluster, clusterWidth(cluster, w, m))
	}
}

// StringWidth returns the number of cells s occupies when measured with m
func StringWidth(s string, m WidthMethod) int {
	total := 0
	EachGrapheme(s, m, func(_ string, width int) {
		total += width
	})
	return total
}

// clusterWidth measures a single cluster. uniWidth is the width uniseg
// reported for it
func clusterWidth(cluster string, uniWidth int, m WidthMethod) int {
	switch m {
	case WidthUnicode:
		return uniWidth
	case WidthNoZWJ:
		if !strings.Contains(cluster, zwj) {
			return uniWidth
		}
		total := 0
		for _, part := range strings.Split(cluster, zwj) {
			total += uniseg.StringWidth(part)
		}
		return total
	default:
		total := 0
		for _, r := range cluster {
			if unicode.Is(unicode.Variation_Selector, r) {
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	}
}
