package attrstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphMergedOnlyOnBuild(t *testing.T) {
	b := New().
		Spacing(LineSpacing(3)).
		Alignment(AlignCenter).
		Color(Foreground(IndexColor(4)))
	assert.NotContains(t, b.attrs, KeyParagraphStyle)

	attrs := b.Build()
	assert.Contains(t, attrs, KeyParagraphStyle)
	assert.NotContains(t, b.attrs, KeyParagraphStyle)
}

func TestKeyNames(t *testing.T) {
	for k := KeyFont; k <= KeyParagraphStyle; k += 1 {
		assert.NotEmpty(t, keyNames[k], "key %d has no name", k)
	}
	assert.Equal(t, "unknown", AttributeKey(200).String())
}
