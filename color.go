package attrstyle

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a text color. The zero value represents the consumer's default
// color
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// Params returns the components of the color: a single palette index, three
// RGB components, or an empty slice if the color is the default color
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// Hex returns the color as "#rrggbb" for RGB colors, the decimal palette
// index for indexed colors, or "" for the default color
func (c Color) Hex() string {
	ps := c.Params()
	switch len(ps) {
	case 1:
		return fmt.Sprintf("%d", ps[0])
	case 3:
		return fmt.Sprintf("#%02x%02x%02x", ps[0], ps[1], ps[2])
	}
	return ""
}

func (c Color) String() string {
	if c == 0 {
		return "default"
	}
	return c.Hex()
}

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates an RGB color from a 24 bit value, eg 0x00AABB
func HexColor(v uint32) Color {
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v))
}

// ColorFrom converts c to an RGB Color. Alpha is dropped: the components are
// un-premultiplied first, so a half transparent red is still red
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBColor(n.R, n.G, n.B)
}

// NamedColor looks up an SVG 1.1 color keyword, eg "cornflowerblue". The
// lookup is case insensitive
func NamedColor(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return RGBColor(c.R, c.G, c.B), true
}
