package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/luvremak/db-coursework/internal/config"

	"gopkg.in/lumberjack.v2"
)

type requestIDKey struct{}

// WithRequestID stores the request id in the context so every record
// logged below it carries the id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// requestIDHandler stamps the context's request id onto each record
// before delegating.
type requestIDHandler struct {
	slog.Handler
}

func (h requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestIDHandler{h.Handler.WithAttrs(attrs)}
}

func (h requestIDHandler) WithGroup(name string) slog.Handler {
	return requestIDHandler{h.Handler.WithGroup(name)}
}

func Init(cfg config.LogConfig) {
	level := parseLevel(cfg.Level)

	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	h := requestIDHandler{slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})}
	slog.SetDefault(slog.New(h))
	Info(context.Background(), "logger initialized", "level", cfg.Level, "file", cfg.File)
}

func Info(ctx context.Context, msg string, args ...any)  { slog.InfoContext(ctx, msg, args...) }
func Warn(ctx context.Context, msg string, args ...any)  { slog.WarnContext(ctx, msg, args...) }
func Error(ctx context.Context, msg string, args ...any) { slog.ErrorContext(ctx, msg, args...) }
func Debug(ctx context.Context, msg string, args ...any) { slog.DebugContext(ctx, msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
