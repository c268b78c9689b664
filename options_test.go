package attrstyle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(Options{}) })

	buf := &bytes.Buffer{}
	Configure(Options{
		LogHandler: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.Level(-8),
		}),
		WidthMethod: WidthUnicode,
	})

	New().Build()
	assert.Contains(t, buf.String(), "built 1 attributes")

	s := NewAttributedString("\u2764\uFE0F", New().Build())
	assert.Equal(t, 2, s.Width())

	Configure(Options{})
	assert.Equal(t, 1, s.Width())
}
