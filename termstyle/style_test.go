package termstyle_test

import (
	"testing"

	"git.sr.ht/~rockorager/attrstyle"
	"git.sr.ht/~rockorager/attrstyle/termstyle"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
)

func TestFromAttributes(t *testing.T) {
	tests := []struct {
		name     string
		builder  *attrstyle.Builder
		expected termstyle.Style
	}{
		{
			name:     "empty",
			builder:  attrstyle.New(),
			expected: termstyle.Style{},
		},
		{
			name: "colors",
			builder: attrstyle.New().
				Color(attrstyle.Foreground(attrstyle.IndexColor(1))).
				Color(attrstyle.Background(attrstyle.HexColor(0x102030))).
				Color(attrstyle.UnderlineColor(attrstyle.IndexColor(4))).
				Color(attrstyle.StrokeColor(attrstyle.IndexColor(5))),
			expected: termstyle.Style{
				Foreground:     attrstyle.IndexColor(1),
				Background:     attrstyle.HexColor(0x102030),
				UnderlineColor: attrstyle.IndexColor(4),
			},
		},
		{
			name: "bold italic",
			builder: attrstyle.New().
				Font(attrstyle.NewFont("Menlo", 12).Bold().Italic()),
			expected: termstyle.Style{
				Attribute: termstyle.AttrBold | termstyle.AttrItalic,
			},
		},
		{
			name: "light is dim",
			builder: attrstyle.New().
				Font(attrstyle.Font{Weight: font.WeightThin}),
			expected: termstyle.Style{
				Attribute: termstyle.AttrDim,
			},
		},
		{
			name: "decorations",
			builder: attrstyle.New().
				Decoration(attrstyle.Underline(attrstyle.UnderlineCurly)).
				Decoration(attrstyle.Strikethrough(attrstyle.UnderlineDouble)),
			expected: termstyle.Style{
				UnderlineStyle: attrstyle.UnderlineCurly,
				Attribute:      termstyle.AttrStrikethrough,
			},
		},
		{
			name: "strikethrough off",
			builder: attrstyle.New().
				Decoration(attrstyle.Strikethrough(attrstyle.UnderlineOff)),
			expected: termstyle.Style{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, termstyle.FromAttributes(test.builder.Build()))
		})
	}
}

func TestFromAttributesWrongType(t *testing.T) {
	attrs := attrstyle.Attributes{
		attrstyle.KeyForegroundColor: "red",
		attrstyle.KeyUnderlineStyle:  1,
		attrstyle.KeyFont:            "Menlo",
	}
	assert.Equal(t, termstyle.Style{}, termstyle.FromAttributes(attrs))
}

func TestCells(t *testing.T) {
	s := attrstyle.Concat(
		attrstyle.Styled("\u00e1b", attrstyle.New().Color(attrstyle.Foreground(attrstyle.IndexColor(2)))),
		attrstyle.Styled("\u4e16", attrstyle.New()),
	)
	cells := termstyle.Cells(s, attrstyle.WidthUnicode)
	green := termstyle.Style{Foreground: attrstyle.IndexColor(2)}
	expected := []termstyle.Cell{
		{Character: termstyle.Character{Grapheme: "\u00e1", Width: 1}, Style: green},
		{Character: termstyle.Character{Grapheme: "b", Width: 1}, Style: green},
		{Character: termstyle.Character{Grapheme: "\u4e16", Width: 2}},
	}
	assert.Equal(t, expected, cells)
	assert.Empty(t, termstyle.Cells(attrstyle.Empty(), attrstyle.WidthUnicode))
}
