package attrstyle

// Shadow describes a drop shadow drawn behind a run of text. Offsets and the
// blur radius are in points
type Shadow struct {
	OffsetX    float64
	OffsetY    float64
	BlurRadius float64
	// Color of the shadow. The zero value lets the consumer pick its default
	// shadow color
	Color Color
}

func NewShadow(dx, dy, blur float32, c Color) Shadow {
	return Shadow{
		OffsetX:    Widen(dx),
		OffsetY:    Widen(dy),
		BlurRadius: Widen(blur),
		Color:      c,
	}
}
