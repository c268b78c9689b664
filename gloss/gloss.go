// Package gloss projects attribute mappings onto lipgloss styles.
//
// Lengths in points are converted to cells one to one, rounding to the
// nearest cell.
package gloss

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/font"

	"git.sr.ht/~rockorager/attrstyle"
	"git.sr.ht/~rockorager/attrstyle/log"
)

// Style returns the lipgloss style closest to attrs. Attributes lipgloss has
// no equivalent for are dropped
func Style(attrs attrstyle.Attributes) lipgloss.Style {
	style := lipgloss.NewStyle()

	if c, ok := attrstyle.Lookup[attrstyle.Color](attrs, attrstyle.KeyForegroundColor); ok {
		style = style.Foreground(terminalColor(c))
	}
	if c, ok := attrstyle.Lookup[attrstyle.Color](attrs, attrstyle.KeyBackgroundColor); ok {
		style = style.Background(terminalColor(c))
	}

	if f, ok := attrstyle.Lookup[attrstyle.Font](attrs, attrstyle.KeyFont); ok {
		style = style.
			Bold(f.Weight >= font.WeightBold).
			Faint(f.Weight <= font.WeightLight).
			Italic(f.Style != font.StyleNormal)
	}

	if ul, ok := attrstyle.Lookup[attrstyle.UnderlineStyle](attrs, attrstyle.KeyUnderlineStyle); ok {
		style = style.Underline(ul != attrstyle.UnderlineOff)
	}
	if st, ok := attrstyle.Lookup[attrstyle.UnderlineStyle](attrs, attrstyle.KeyStrikethroughStyle); ok {
		style = style.Strikethrough(st != attrstyle.UnderlineOff)
	}

	p, ok := attrs.Paragraph()
	if !ok {
		if _, present := attrs[attrstyle.KeyParagraphStyle]; present {
			log.Warn("[gloss] %s has type %T", attrstyle.KeyParagraphStyle, attrs[attrstyle.KeyParagraphStyle])
		}
		return style
	}
	style = style.
		Align(position(p)).
		MarginTop(cells(p.ParagraphSpacingBefore)).
		MarginBottom(cells(p.ParagraphSpacing)).
		PaddingLeft(cells(p.HeadIndent))
	// A positive tail indent is a fixed line length, which lipgloss can't
	// express
	if p.TailIndent < 0 {
		style = style.PaddingRight(cells(-p.TailIndent))
	}
	return style
}

// Styles returns one style per run of s
func Styles(s attrstyle.AttributedString) []lipgloss.Style {
	runs := s.Runs()
	styles := make([]lipgloss.Style, 0, len(runs))
	for _, run := range runs {
		styles = append(styles, Style(run.Attributes))
	}
	return styles
}

func terminalColor(c attrstyle.Color) lipgloss.TerminalColor {
	if c == 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}

func position(p attrstyle.ParagraphStyle) lipgloss.Position {
	switch p.Alignment {
	case attrstyle.AlignCenter:
		return lipgloss.Center
	case attrstyle.AlignRight:
		return lipgloss.Right
	case attrstyle.AlignNatural:
		if p.BaseWritingDirection == attrstyle.DirectionRightToLeft {
			return lipgloss.Right
		}
	}
	return lipgloss.Left
}

func cells(points float64) int {
	if points <= 0 {
		return 0
	}
	return int(math.Round(points))
}
