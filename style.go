package attrstyle

// UnderlineStyle represents the style of line to draw for underlines and
// strikethroughs
type UnderlineStyle uint8

const (
	UnderlineOff UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
	UnderlineThick
)

func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineOff:
		return "off"
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineCurly:
		return "curly"
	case UnderlineDotted:
		return "dotted"
	case UnderlineDashed:
		return "dashed"
	case UnderlineThick:
		return "thick"
	}
	return "unknown"
}

// TextEffect names a special effect applied by the consumer to a run of text
type TextEffect string

// TextEffectLetterpress gives text an embossed, pressed-into-paper look
const TextEffectLetterpress TextEffect = "letterpress"
