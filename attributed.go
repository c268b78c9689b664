package attrstyle

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/exp/slices"

	"git.sr.ht/~rockorager/attrstyle/log"
)

// Run is a span of text with uniform attributes
type Run struct {
	Text       string
	Attributes Attributes
}

// AttributedString is text paired with attributes, as a sequence of runs. An
// AttributedString is immutable. The zero value is the empty string
type AttributedString struct {
	runs []Run
}

// Empty returns the empty string, the identity of [Concat]. It is equal to the
// zero value
func Empty() AttributedString {
	return AttributedString{}
}

// NewAttributedString pairs text with a copy of attrs. Empty text yields
// the empty string
func NewAttributedString(text string, attrs Attributes) AttributedString {
	if text == "" {
		return Empty()
	}
	return AttributedString{
		runs: []Run{{Text: text, Attributes: attrs.Clone()}},
	}
}

// Styled pairs text with the attributes built by b
func Styled(text string, b *Builder) AttributedString {
	return NewAttributedString(text, b.Build())
}

// Concat joins the runs of parts in order. None of the parts are modified
func Concat(parts ...AttributedString) AttributedString {
	n := 0
	for _, p := range parts {
		n += len(p.runs)
	}
	if n == 0 {
		return Empty()
	}
	runs := make([]Run, 0, n)
	for _, p := range parts {
		runs = append(runs, p.runs...)
	}
	log.Debug("[attrstyle] concatenated %d parts into %d runs", len(parts), n)
	return AttributedString{runs: runs}
}

// Append returns s followed by other
func (s AttributedString) Append(other AttributedString) AttributedString {
	return Concat(s, other)
}

// Runs returns a copy of the runs of s
func (s AttributedString) Runs() []Run {
	runs := slices.Clone(s.runs)
	for i := range runs {
		runs[i].Attributes = runs[i].Attributes.Clone()
	}
	return runs
}

// String returns the text of s without attributes
func (s AttributedString) String() string {
	bldr := &strings.Builder{}
	for _, run := range s.runs {
		bldr.WriteString(run.Text)
	}
	return bldr.String()
}

// Len returns the number of grapheme clusters in s. Clusters are counted per
// run, so a cluster is never split between two runs
func (s AttributedString) Len() int {
	total := 0
	for _, run := range s.runs {
		total += uniseg.GraphemeClusterCount(run.Text)
	}
	return total
}

// Width returns the display width of s in cells, measured with the method set
// by [Configure]
func (s AttributedString) Width() int {
	return s.WidthWith(widthMethod)
}

// WidthWith returns the display width of s in cells, measured with m
func (s AttributedString) WidthWith(m WidthMethod) int {
	total := 0
	for _, run := range s.runs {
		total += StringWidth(run.Text, m)
	}
	return total
}

// AttributesAt returns a copy of the attributes of the grapheme cluster at
// index i, as counted by [AttributedString.Len]
func (s AttributedString) AttributesAt(i int) (Attributes, bool) {
	if i < 0 {
		return nil, false
	}
	for _, run := range s.runs {
		n := uniseg.GraphemeClusterCount(run.Text)
		if i < n {
			return run.Attributes.Clone(), true
		}
		i -= n
	}
	return nil, false
}
