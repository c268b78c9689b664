package termstyle

import "git.sr.ht/~rockorager/attrstyle"

// Character is a single extended-grapheme-cluster. It also contains the width
// of the EGC
type Character struct {
	Grapheme string
	Width    int
}

// Cell is a styled Character
type Cell struct {
	Character
	Style
}

// Characters splits s into grapheme clusters, measuring each with method
func Characters(s string, method attrstyle.WidthMethod) []Character {
	egcs := make([]Character, 0, len(s))
	attrstyle.EachGrapheme(s, method, func(grapheme string, width int) {
		egcs = append(egcs, Character{
			Grapheme: grapheme,
			Width:    width,
		})
	})
	return egcs
}

// Cells converts s into one Cell per grapheme cluster. Each run is styled with
// FromAttributes
func Cells(s attrstyle.AttributedString, method attrstyle.WidthMethod) []Cell {
	cells := []Cell{}
	for _, run := range s.Runs() {
		style := FromAttributes(run.Attributes)
		for _, char := range Characters(run.Text, method) {
			cells = append(cells, Cell{
				Character: char,
				Style:     style,
			})
		}
	}
	return cells
}
