package attrstyle_test

import (
	"testing"

	"git.sr.ht/~rockorager/attrstyle"
	"github.com/stretchr/testify/assert"
)

func TestAttributeKeyString(t *testing.T) {
	tests := []struct {
		key      attrstyle.AttributeKey
		expected string
	}{
		{key: attrstyle.KeyFont, expected: "font"},
		{key: attrstyle.KeyForegroundColor, expected: "foregroundColor"},
		{key: attrstyle.KeyBackgroundColor, expected: "backgroundColor"},
		{key: attrstyle.KeyStrokeColor, expected: "strokeColor"},
		{key: attrstyle.KeyStrokeWidth, expected: "strokeWidth"},
		{key: attrstyle.KeyStrikethroughColor, expected: "strikethroughColor"},
		{key: attrstyle.KeyStrikethroughStyle, expected: "strikethroughStyle"},
		{key: attrstyle.KeyUnderlineColor, expected: "underlineColor"},
		{key: attrstyle.KeyUnderlineStyle, expected: "underlineStyle"},
		{key: attrstyle.KeyBaselineOffset, expected: "baselineOffset"},
		{key: attrstyle.KeyTextEffect, expected: "textEffect"},
		{key: attrstyle.KeyShadow, expected: "shadow"},
		{key: attrstyle.KeyKern, expected: "kern"},
		{key: attrstyle.KeyLigature, expected: "ligature"},
		{key: attrstyle.KeyParagraphStyle, expected: "paragraphStyle"},
		{key: attrstyle.KeyParagraphStyle + 1, expected: "unknown"},
		{key: attrstyle.AttributeKey(255), expected: "unknown"},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.key.String())
		})
	}
}

func TestBuildStringsKeys(t *testing.T) {
	strs := attrstyle.New().
		Font(attrstyle.NewFont("Menlo", 10)).
		Color(attrstyle.StrokeColor(attrstyle.IndexColor(1))).
		StrokeWidth(2).
		BaselineOffset(1).
		TextEffect(attrstyle.TextEffectLetterpress).
		Shadow(attrstyle.Shadow{}).
		BuildStrings()

	for _, k := range []string{"font", "strokeColor", "strokeWidth", "baselineOffset", "textEffect", "shadow", "paragraphStyle"} {
		assert.Contains(t, strs, k)
	}
	assert.Len(t, strs, 7)
}
