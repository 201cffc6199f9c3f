package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Debug      bool
	ShowSource bool
	// Format is "json" or "text"; anything else means text.
	Format string
	// Writer defaults to stdout.
	Writer io.Writer
}

func New(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	hopts := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.ShowSource,
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}
	return slog.New(handler)
}

func SetupGlobal(opts Options) {
	slog.SetDefault(New(opts))
}
