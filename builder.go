// Package attrstyle builds attribute mappings for rich text. A [Builder]
// accumulates styling options through chained calls and compiles them with
// [Builder.Build]. [AttributedString] pairs text with a built mapping.
package attrstyle

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"git.sr.ht/~rockorager/attrstyle/log"
)

// Builder accumulates styling options. Every option method assigns a single
// field and returns the Builder so calls can be chained. Setting an option
// twice keeps the last value. No values are validated.
//
// The zero value is an empty Builder with a default paragraph style. A
// Builder is not safe for concurrent use.
type Builder struct {
	// attrs never holds KeyParagraphStyle. The paragraph is merged in by
	// Build
	attrs     Attributes
	paragraph ParagraphStyle
}

// New returns an empty Builder with a default paragraph style
func New() *Builder {
	b := &Builder{}
	b.init()
	return b
}

func (b *Builder) init() {
	if b.attrs != nil {
		return
	}
	b.attrs = Attributes{}
	b.paragraph = DefaultParagraphStyle()
}

func (b *Builder) Font(f Font) *Builder {
	b.init()
	b.attrs[KeyFont] = f
	return b
}

func (b *Builder) Color(opt ColorOption) *Builder {
	b.init()
	switch opt.target {
	case colorForeground:
		b.attrs[KeyForegroundColor] = opt.color
	case colorBackground:
		b.attrs[KeyBackgroundColor] = opt.color
	case colorStroke:
		b.attrs[KeyStrokeColor] = opt.color
	case colorStrikethrough:
		b.attrs[KeyStrikethroughColor] = opt.color
	case colorUnderline:
		b.attrs[KeyUnderlineColor] = opt.color
	}
	return b
}

func (b *Builder) Spacing(opt SpacingOption) *Builder {
	b.init()
	switch opt.target {
	case spacingLine:
		b.paragraph.LineSpacing = Widen(opt.value)
	case spacingBefore:
		b.paragraph.ParagraphSpacingBefore = Widen(opt.value)
	case spacingAfter:
		b.paragraph.ParagraphSpacing = Widen(opt.value)
	}
	return b
}

func (b *Builder) LineHeight(opt LineHeightOption) *Builder {
	b.init()
	switch opt.target {
	case lineHeightMinimum:
		b.paragraph.MinimumLineHeight = Widen(opt.value)
	case lineHeightMaximum:
		b.paragraph.MaximumLineHeight = Widen(opt.value)
	case lineHeightMultiple:
		b.paragraph.LineHeightMultiple = Widen(opt.value)
	}
	return b
}

func (b *Builder) Indent(opt IndentOption) *Builder {
	b.init()
	switch opt.target {
	case indentFirstLine:
		b.paragraph.FirstLineHeadIndent = Widen(opt.value)
	case indentHead:
		b.paragraph.HeadIndent = Widen(opt.value)
	case indentTail:
		b.paragraph.TailIndent = Widen(opt.value)
	}
	return b
}

func (b *Builder) Alignment(a Alignment) *Builder {
	b.init()
	b.paragraph.Alignment = a
	return b
}

func (b *Builder) WritingDirection(d WritingDirection) *Builder {
	b.init()
	b.paragraph.BaseWritingDirection = d
	return b
}

// Tab sets either the tab stops or the default tab interval. The stops are
// copied
func (b *Builder) Tab(opt TabOption) *Builder {
	b.init()
	if opt.isStops {
		b.paragraph.TabStops = slices.Clone(opt.stops)
		return b
	}
	b.paragraph.DefaultTabInterval = Widen(opt.interval)
	return b
}

func (b *Builder) Hyphenation(factor float32) *Builder {
	b.init()
	b.paragraph.HyphenationFactor = factor
	return b
}

// Decoration sets the line style of the strikethrough or the underline
func (b *Builder) Decoration(opt DecorationOption) *Builder {
	b.init()
	switch opt.target {
	case decorationStrikethrough:
		b.attrs[KeyStrikethroughStyle] = opt.style
	case decorationUnderline:
		b.attrs[KeyUnderlineStyle] = opt.style
	}
	return b
}

func (b *Builder) BreakMode(m LineBreakMode) *Builder {
	b.init()
	b.paragraph.LineBreakMode = m
	return b
}

// StrokeWidth is a percentage of the font size. Positive values stroke the
// outline only, negative values stroke and fill
func (b *Builder) StrokeWidth(w float32) *Builder {
	b.init()
	b.attrs[KeyStrokeWidth] = Widen(w)
	return b
}

func (b *Builder) BaselineOffset(offset float32) *Builder {
	b.init()
	b.attrs[KeyBaselineOffset] = Widen(offset)
	return b
}

func (b *Builder) TextEffect(effect TextEffect) *Builder {
	b.init()
	b.attrs[KeyTextEffect] = effect
	return b
}

func (b *Builder) Shadow(s Shadow) *Builder {
	b.init()
	b.attrs[KeyShadow] = s
	return b
}

// Kern adjusts the spacing between characters, in points
func (b *Builder) Kern(kern float32) *Builder {
	b.init()
	b.attrs[KeyKern] = Widen(kern)
	return b
}

// Ligature sets which ligatures are used: 0 for none, 1 for the default set
func (b *Builder) Ligature(n int) *Builder {
	b.init()
	b.attrs[KeyLigature] = n
	return b
}

// Build returns the accumulated attributes with the paragraph style stored
// under KeyParagraphStyle. The result is a snapshot: later option calls do not
// affect it, and changes to it do not affect the Builder
func (b *Builder) Build() Attributes {
	b.init()
	attrs := maps.Clone(b.attrs)
	attrs[KeyParagraphStyle] = b.paragraph.Clone()
	log.Trace("[attrstyle] built %d attributes", len(attrs))
	return attrs
}

// BuildStrings is Build keyed by the raw key names
func (b *Builder) BuildStrings() map[string]any {
	return b.Build().Strings()
}
