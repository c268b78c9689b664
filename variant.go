package attrstyle

type colorTarget uint8

const (
	colorForeground colorTarget = iota
	colorBackground
	colorStroke
	colorStrikethrough
	colorUnderline
)

// ColorOption is a color together with the part of the text it applies to
type ColorOption struct {
	target colorTarget
	color  Color
}

// Foreground colors the glyphs
func Foreground(c Color) ColorOption {
	return ColorOption{target: colorForeground, color: c}
}

// Background colors the area behind the glyphs
func Background(c Color) ColorOption {
	return ColorOption{target: colorBackground, color: c}
}

// StrokeColor colors glyph outlines. See [Builder.StrokeWidth]
func StrokeColor(c Color) ColorOption {
	return ColorOption{target: colorStroke, color: c}
}

func StrikethroughColor(c Color) ColorOption {
	return ColorOption{target: colorStrikethrough, color: c}
}

func UnderlineColor(c Color) ColorOption {
	return ColorOption{target: colorUnderline, color: c}
}

type spacingTarget uint8

const (
	spacingLine spacingTarget = iota
	spacingBefore
	spacingAfter
)

// SpacingOption is the space between lines or around a paragraph
type SpacingOption struct {
	target spacingTarget
	value  float32
}

// LineSpacing is the space between the bottom of one line and the top of the
// next
func LineSpacing(v float32) SpacingOption {
	return SpacingOption{target: spacingLine, value: v}
}

func ParagraphSpacingBefore(v float32) SpacingOption {
	return SpacingOption{target: spacingBefore, value: v}
}

func ParagraphSpacingAfter(v float32) SpacingOption {
	return SpacingOption{target: spacingAfter, value: v}
}

type lineHeightTarget uint8

const (
	lineHeightMinimum lineHeightTarget = iota
	lineHeightMaximum
	lineHeightMultiple
)

// LineHeightOption bounds or scales the height of each line
type LineHeightOption struct {
	target lineHeightTarget
	value  float32
}

func MinimumLineHeight(v float32) LineHeightOption {
	return LineHeightOption{target: lineHeightMinimum, value: v}
}

// MaximumLineHeight caps line height. 0 means no limit
func MaximumLineHeight(v float32) LineHeightOption {
	return LineHeightOption{target: lineHeightMaximum, value: v}
}

// LineHeightMultiple scales the natural line height
func LineHeightMultiple(v float32) LineHeightOption {
	return LineHeightOption{target: lineHeightMultiple, value: v}
}

type indentTarget uint8

const (
	indentFirstLine indentTarget = iota
	indentHead
	indentTail
)

// IndentOption is an indentation of a paragraph's lines
type IndentOption struct {
	target indentTarget
	value  float32
}

// FirstLineIndent indents the first line from the leading margin
func FirstLineIndent(v float32) IndentOption {
	return IndentOption{target: indentFirstLine, value: v}
}

// HeadIndent indents all lines but the first from the leading margin
func HeadIndent(v float32) IndentOption {
	return IndentOption{target: indentHead, value: v}
}

// TailIndent sets the trailing edge of lines. See [ParagraphStyle.TailIndent]
func TailIndent(v float32) IndentOption {
	return IndentOption{target: indentTail, value: v}
}

// TabOption is either an explicit set of tab stops or the interval of the
// tab stops following the last explicit one
type TabOption struct {
	stops    []TextTab
	interval float32
	isStops  bool
}

func TabStops(stops ...TextTab) TabOption {
	return TabOption{stops: stops, isStops: true}
}

func DefaultTabInterval(v float32) TabOption {
	return TabOption{interval: v}
}

type decorationTarget uint8

const (
	decorationStrikethrough decorationTarget = iota
	decorationUnderline
)

// DecorationOption is a line style for either the strikethrough or the
// underline
type DecorationOption struct {
	target decorationTarget
	style  UnderlineStyle
}

func Strikethrough(s UnderlineStyle) DecorationOption {
	return DecorationOption{target: decorationStrikethrough, style: s}
}

func Underline(s UnderlineStyle) DecorationOption {
	return DecorationOption{target: decorationUnderline, style: s}
}
