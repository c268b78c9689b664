package attrstyle

// AttributeKey names one entry of an attribute mapping
type AttributeKey uint8

const (
	KeyFont AttributeKey = iota
	KeyForegroundColor
	KeyBackgroundColor
	KeyStrokeColor
	KeyStrokeWidth
	KeyStrikethroughColor
	KeyStrikethroughStyle
	KeyUnderlineColor
	KeyUnderlineStyle
	KeyBaselineOffset
	KeyTextEffect
	KeyShadow
	KeyKern
	KeyLigature
	// KeyParagraphStyle is only set by Builder.Build. It stays last
	KeyParagraphStyle
)

var keyNames = [...]string{
	KeyFont:               "font",
	KeyForegroundColor:    "foregroundColor",
	KeyBackgroundColor:    "backgroundColor",
	KeyStrokeColor:        "strokeColor",
	KeyStrokeWidth:        "strokeWidth",
	KeyStrikethroughColor: "strikethroughColor",
	KeyStrikethroughStyle: "strikethroughStyle",
	KeyUnderlineColor:     "underlineColor",
	KeyUnderlineStyle:     "underlineStyle",
	KeyBaselineOffset:     "baselineOffset",
	KeyTextEffect:         "textEffect",
	KeyShadow:             "shadow",
	KeyKern:               "kern",
	KeyLigature:           "ligature",
	KeyParagraphStyle:     "paragraphStyle",
}

// String returns the raw key used by string keyed attribute mappings
func (k AttributeKey) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}
