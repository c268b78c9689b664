package attrstyle

import "golang.org/x/exp/maps"

// Attributes is an attribute mapping. Values have the following types:
//
//	KeyFont                                  Font
//	KeyForegroundColor, KeyBackgroundColor,
//	KeyStrokeColor, KeyStrikethroughColor,
//	KeyUnderlineColor                        Color
//	KeyStrikethroughStyle, KeyUnderlineStyle UnderlineStyle
//	KeyStrokeWidth, KeyBaselineOffset,
//	KeyKern                                  float64
//	KeyTextEffect                            TextEffect
//	KeyShadow                                Shadow
//	KeyLigature                              int
//	KeyParagraphStyle                        ParagraphStyle
type Attributes map[AttributeKey]any

// Clone returns a copy of a. The paragraph style, if any, is deep copied
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := maps.Clone(a)
	if p, ok := c[KeyParagraphStyle].(ParagraphStyle); ok {
		c[KeyParagraphStyle] = p.Clone()
	}
	return c
}

// Strings rekeys a by the raw key names
func (a Attributes) Strings() map[string]any {
	return MapPairs(a, func(k AttributeKey, v any) (string, any) {
		return k.String(), v
	})
}

// Paragraph returns the paragraph style of a, if present
func (a Attributes) Paragraph() (ParagraphStyle, bool) {
	return Lookup[ParagraphStyle](a, KeyParagraphStyle)
}

// Lookup returns the value stored under key if it is present and of type T
func Lookup[T any](a Attributes, key AttributeKey) (T, bool) {
	v, ok := a[key].(T)
	return v, ok
}
