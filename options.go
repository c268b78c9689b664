package attrstyle

import (
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/attrstyle/log"
)

// Options configure package wide behaviour
type Options struct {
	// A slog.Handler to receive logs. attrstyle logs using the stdlib
	// levels, and traces at -8. A nil handler discards logs
	LogHandler slog.Handler

	// WidthMethod is used by [AttributedString.Width]
	WidthMethod WidthMethod
}

var widthMethod = WidthWcwidth

// Configure applies opts. It is not safe to call concurrently with other
// functions of this package
func Configure(opts Options) {
	log.SetHandler(opts.LogHandler)
	if opts.LogHandler != nil {
		log.SetLevel(log.LevelTrace)
	} else {
		log.SetLevel(log.LevelError)
	}
	widthMethod = opts.WidthMethod
}
