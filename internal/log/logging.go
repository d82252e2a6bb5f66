// Package log builds the configured slog.Logger for the bridge and hosts
// the raw HID exchange logger.
//
// Without a log file, records below error go to stdout and errors to
// stderr, so stderr redirection catches failures while normal output stays
// on stdout.
package log

import (
	"context"
	"log/slog"
	"os"
)

// LevelTrace is a custom slog level below Debug used for per-exchange
// output such as raw report dumps.
const LevelTrace slog.Level = -8

// ParseLevel maps the --log.level flag value to a slog level. Unrecognized
// values fall back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout forwards records to every handler in the list.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelRange gates an underlying handler to records within [min, max].
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (lr levelRange) pass(level slog.Level) bool {
	return level >= lr.min && level <= lr.max
}

func (lr levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return lr.pass(level) && lr.h.Enabled(ctx, level)
}

func (lr levelRange) Handle(ctx context.Context, r slog.Record) error {
	if !lr.pass(r.Level) {
		return nil
	}
	return lr.h.Handle(ctx, r)
}

func (lr levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: lr.min, max: lr.max, h: lr.h.WithAttrs(attrs)}
}

func (lr levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: lr.min, max: lr.max, h: lr.h.WithGroup(name)}
}

// maxLevel is the highest slog level we route; used as the open upper bound
// for the stderr handler.
const maxLevel = slog.Level(1 << 10)

// Setup builds the logger for the given level name and optional log file.
// The returned cleanup closes the file handler, if any.
func Setup(logLevel, logFile string) (*slog.Logger, func(), error) {
	level := ParseLevel(logLevel)
	cleanup := func() {}

	var handlers fanout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = f.Close() }
		handlers = append(handlers,
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	} else {
		handlers = append(handlers,
			levelRange{min: level, max: slog.LevelError - 1,
				h: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})},
			levelRange{min: slog.LevelError, max: maxLevel,
				h: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})})
	}
	return slog.New(handlers), cleanup, nil
}
