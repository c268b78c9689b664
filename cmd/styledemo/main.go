// styledemo builds a few styled strings and prints them through lipgloss
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/attrstyle"
	"git.sr.ht/~rockorager/attrstyle/gloss"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "log builds to stderr")
	flag.BoolVar(&verbose, "verbose", false, "log builds to stderr")
	flag.Parse()

	opts := attrstyle.Options{
		WidthMethod: attrstyle.WidthUnicode,
	}
	if verbose {
		opts.LogHandler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug - 4,
			TimeFormat: "15:04:05.000",
		})
	}
	attrstyle.Configure(opts)

	for _, line := range lines() {
		out := ""
		styles := gloss.Styles(line)
		for i, run := range line.Runs() {
			out += styles[i].Render(run.Text)
		}
		fmt.Println(out)
		if verbose {
			fmt.Fprintf(os.Stderr, "%q: %d graphemes, %d cells\n", line.String(), line.Len(), line.Width())
		}
	}
}

func lines() []attrstyle.AttributedString {
	title := attrstyle.New().
		Font(attrstyle.NewFont("", 14).Bold()).
		Color(attrstyle.Foreground(attrstyle.IndexColor(205))).
		Alignment(attrstyle.AlignCenter).
		Spacing(attrstyle.ParagraphSpacingAfter(1))
	plain := attrstyle.New()
	accent := attrstyle.New().
		Color(attrstyle.Foreground(attrstyle.HexColor(0x6495ed))).
		Decoration(attrstyle.Underline(attrstyle.UnderlineSingle))
	muted := attrstyle.New().
		Font(attrstyle.Font{}.Italic()).
		Color(attrstyle.Foreground(attrstyle.IndexColor(245)))
	struck := attrstyle.New().
		Decoration(attrstyle.Strikethrough(attrstyle.UnderlineSingle))

	return []attrstyle.AttributedString{
		attrstyle.Styled("attrstyle", title),
		attrstyle.Concat(
			attrstyle.Styled("Styles are ", plain),
			attrstyle.Styled("built", accent),
			attrstyle.Styled(" once and ", plain),
			attrstyle.Styled("paired with text", muted),
		),
		attrstyle.Styled("runs never merge", struck).
			Append(attrstyle.Styled(" 世界", accent)),
	}
}
