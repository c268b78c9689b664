package attrstyle

import "golang.org/x/image/font"

// Font describes the typeface a run of text is set in. The zero value is the
// consumer's default face at its default size
type Font struct {
	// Family is the font family name, eg "Helvetica Neue"
	Family string
	// Size is the point size
	Size float64
	// Weight is the font weight. The zero value is font.WeightNormal
	Weight font.Weight
	// Style is the slant of the font. The zero value is font.StyleNormal
	Style font.Style
}

// NewFont returns a regular weight, upright font
func NewFont(family string, size float32) Font {
	return Font{
		Family: family,
		Size:   Widen(size),
		Weight: font.WeightNormal,
		Style:  font.StyleNormal,
	}
}

// Bold returns a copy of f with a bold weight
func (f Font) Bold() Font {
	f.Weight = font.WeightBold
	return f
}

// Italic returns a copy of f with an italic style
func (f Font) Italic() Font {
	f.Style = font.StyleItalic
	return f
}
