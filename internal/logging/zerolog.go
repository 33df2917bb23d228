package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger builds a logger writing to w at the given level.
// Unrecognised levels fall back to "info".
func NewZerologLogger(w io.Writer, level string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	emit(z.l.Debug(), msg, args...)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	emit(z.l.Info(), msg, args...)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	emit(z.l.Warn(), msg, args...)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	emit(z.l.Error(), msg, args...)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		c = c.Interface(key(args[i]), args[i+1])
	}
	return &ZerologLogger{l: c.Logger()}
}

// emit attaches the variadic key-value pairs to the event and fires it.
// A trailing keyless value is dropped.
func emit(e *zerolog.Event, msg string, args ...any) {
	for i := 0; i+1 < len(args); i += 2 {
		e = e.Interface(key(args[i]), args[i+1])
	}
	e.Msg(msg)
}

func key(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
