// Package termstyle projects attribute mappings onto the style model of a
// character cell terminal
package termstyle

import (
	"golang.org/x/image/font"

	"git.sr.ht/~rockorager/attrstyle"
	"git.sr.ht/~rockorager/attrstyle/log"
)

// Style contains all the data required to style a [Cell]
type Style struct {
	// Foreground is the color to apply to the foreground of this cell
	Foreground attrstyle.Color
	// Background is the color to apply to the background of this cell
	Background attrstyle.Color
	// UnderlineColor is the color to apply to the underline of this cell,
	// if supported
	UnderlineColor attrstyle.Color
	// UnderlineStyle is the type of underline to apply. Terminals that don't
	// support a particular style fall back to single underlines
	UnderlineStyle attrstyle.UnderlineStyle
	// Attribute represents all other style information for this cell
	Attribute AttributeMask
}

// AttributeMask represents a bitmask of boolean attributes to style a cell
type AttributeMask uint8

const (
	AttrNone               = 0
	AttrBold AttributeMask = 1 << iota
	AttrDim
	AttrItalic
	AttrStrikethrough
)

// FromAttributes returns the terminal style closest to attrs. Attributes a
// terminal cannot express (spacing, kerning, shadows...) are dropped.
// Values of an unexpected type are ignored
func FromAttributes(attrs attrstyle.Attributes) Style {
	style := Style{}
	for key, v := range attrs {
		switch key {
		case attrstyle.KeyForegroundColor:
			style.Foreground = color(key, v)
		case attrstyle.KeyBackgroundColor:
			style.Background = color(key, v)
		case attrstyle.KeyUnderlineColor:
			style.UnderlineColor = color(key, v)
		case attrstyle.KeyUnderlineStyle:
			ul, ok := v.(attrstyle.UnderlineStyle)
			if !ok {
				log.Warn("[termstyle] %s has type %T", key, v)
				continue
			}
			style.UnderlineStyle = ul
		case attrstyle.KeyStrikethroughStyle:
			st, ok := v.(attrstyle.UnderlineStyle)
			if !ok {
				log.Warn("[termstyle] %s has type %T", key, v)
				continue
			}
			if st != attrstyle.UnderlineOff {
				style.Attribute |= AttrStrikethrough
			}
		case attrstyle.KeyFont:
			f, ok := v.(attrstyle.Font)
			if !ok {
				log.Warn("[termstyle] %s has type %T", key, v)
				continue
			}
			switch {
			case f.Weight >= font.WeightBold:
				style.Attribute |= AttrBold
			case f.Weight <= font.WeightLight:
				style.Attribute |= AttrDim
			}
			if f.Style != font.StyleNormal {
				style.Attribute |= AttrItalic
			}
		}
	}
	return style
}

func color(key attrstyle.AttributeKey, v any) attrstyle.Color {
	c, ok := v.(attrstyle.Color)
	if !ok {
		log.Warn("[termstyle] %s has type %T", key, v)
		return 0
	}
	return c
}
