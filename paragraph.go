package attrstyle

import "golang.org/x/exp/slices"

// Alignment is the horizontal alignment of the lines of a paragraph
type Alignment uint8

const (
	// AlignNatural aligns to the leading edge of the writing direction
	AlignNatural Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustified
)

func (a Alignment) String() string {
	switch a {
	case AlignNatural:
		return "natural"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustified:
		return "justified"
	}
	return "unknown"
}

// WritingDirection is the base writing direction of a paragraph
type WritingDirection uint8

const (
	// DirectionNatural uses the direction determined by the Unicode
	// bidirectional algorithm
	DirectionNatural WritingDirection = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

func (d WritingDirection) String() string {
	switch d {
	case DirectionNatural:
		return "natural"
	case DirectionLeftToRight:
		return "ltr"
	case DirectionRightToLeft:
		return "rtl"
	}
	return "unknown"
}

// LineBreakMode controls what happens to lines too long for their container
type LineBreakMode uint8

const (
	BreakByWordWrapping LineBreakMode = iota
	BreakByCharWrapping
	BreakByClipping
	BreakByTruncatingHead
	BreakByTruncatingTail
	BreakByTruncatingMiddle
)

func (m LineBreakMode) String() string {
	switch m {
	case BreakByWordWrapping:
		return "word-wrapping"
	case BreakByCharWrapping:
		return "char-wrapping"
	case BreakByClipping:
		return "clipping"
	case BreakByTruncatingHead:
		return "truncating-head"
	case BreakByTruncatingTail:
		return "truncating-tail"
	case BreakByTruncatingMiddle:
		return "truncating-middle"
	}
	return "unknown"
}

// TextTab is a tab stop. Location is in points from the leading margin
type TextTab struct {
	Alignment Alignment
	Location  float64
}

const (
	defaultTabStops    = 12
	defaultTabInterval = 28
)

// ParagraphStyle is the block level configuration of a paragraph. All lengths
// are in points
type ParagraphStyle struct {
	LineSpacing float64
	// ParagraphSpacing is the space after the paragraph
	ParagraphSpacing       float64
	ParagraphSpacingBefore float64

	FirstLineHeadIndent float64
	HeadIndent          float64
	// TailIndent is measured from the leading margin if positive, from the
	// trailing margin if negative or zero
	TailIndent float64

	MinimumLineHeight  float64
	MaximumLineHeight  float64
	LineHeightMultiple float64

	Alignment            Alignment
	BaseWritingDirection WritingDirection

	TabStops           []TextTab
	DefaultTabInterval float64

	// HyphenationFactor is the threshold, 0 to 1, at which hyphenation is
	// attempted. 0 disables hyphenation
	HyphenationFactor float32
	LineBreakMode     LineBreakMode
}

// DefaultParagraphStyle returns the paragraph configuration consumers assume
// when none is given: zero spacing and indents, natural alignment and
// direction, word wrapping and twelve left aligned tab stops every 28 points
func DefaultParagraphStyle() ParagraphStyle {
	stops := make([]TextTab, 0, defaultTabStops)
	for i := 1; i <= defaultTabStops; i += 1 {
		stops = append(stops, TextTab{
			Alignment: AlignLeft,
			Location:  float64(i * defaultTabInterval),
		})
	}
	return ParagraphStyle{
		TabStops:      stops,
		LineBreakMode: BreakByWordWrapping,
	}
}

// Clone returns a copy of p which shares no memory with p
func (p ParagraphStyle) Clone() ParagraphStyle {
	p.TabStops = slices.Clone(p.TabStops)
	return p
}
