// Package log is the leveled logger shared by the attrstyle packages. Output
// is discarded until SetOutput or SetHandler is called.
package log

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slog"
)

const (
	LevelError int = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// slog has no trace level. We log traces at -8
const slogLevelTrace = slog.LevelDebug - 4

var (
	level  = LevelError
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// LevelError = 0
// LevelWarn = 1
// LevelInfo  = 2
// LevelDebug  = 3
// LevelTrace = 4
func SetLevel(l int) {
	level = l
}

// SetOutput sends text formatted records to w
func SetOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevelTrace,
	}))
}

// SetHandler sends records to h. A nil handler discards all output
func SetHandler(h slog.Handler) {
	if h == nil {
		h = slog.NewTextHandler(io.Discard, nil)
	}
	logger = slog.New(h)
}

func fmtMessage(message string, args ...any) string {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return message
}

func output(l int, sl slog.Level, format string, args ...any) {
	if level < l {
		return
	}
	logger.Log(context.Background(), sl, fmtMessage(format, args...))
}

func Trace(format string, args ...any) {
	output(LevelTrace, slogLevelTrace, format, args...)
}

func Debug(format string, args ...any) {
	output(LevelDebug, slog.LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	output(LevelInfo, slog.LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	output(LevelWarn, slog.LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	output(LevelError, slog.LevelError, format, args...)
}
