package app

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger builds the process logger. In auto mode a terminal gets the
// text handler and anything else gets JSON.
func NewLogger(out *os.File, format string) *slog.Logger {
	if format == LogFormatAuto {
		format = LogFormatJSON
		if term.IsTerminal(int(out.Fd())) {
			format = LogFormatText
		}
	}

	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
