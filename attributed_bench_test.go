package attrstyle_test

import (
	"testing"

	"git.sr.ht/~rockorager/attrstyle"
)

func BenchmarkAttributedString(b *testing.B) {
	const testString = "\U0001F600\U0001F52E\U0001F30D\U0001F4DDtest string"

	style := attrstyle.New().
		Font(attrstyle.NewFont("Menlo", 12)).
		Color(attrstyle.Foreground(attrstyle.IndexColor(1)))
	s := attrstyle.Concat(
		attrstyle.Styled(testString, style),
		attrstyle.Styled(testString, attrstyle.New()),
	)

	b.Run("build", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			_ = style.Build()
		}
	})
	b.Run("concat", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			_ = s.Append(s)
		}
	})
	b.Run("len", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			_ = s.Len()
		}
	})
	b.Run("width unicode", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			_ = s.WidthWith(attrstyle.WidthUnicode)
		}
	})
	b.Run("width wcwidth", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			_ = s.WidthWith(attrstyle.WidthWcwidth)
		}
	})
}
