// Package log provides slog loggers that keep secret header values and
// sensitive header attributes out of log output.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httphdr/header"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.Format[any](redact),
)

// redact replaces attributes keyed by a sensitive header field name and resolves
// log valuers before they reach handlers that dump values by reflection.
func redact(_ []string, key string, v slog.Value) slog.Value {
	if header.IsSensitive(key) {
		return slog.StringValue(header.Redacted)
	}
	switch v.Kind() {
	case slog.KindLogValuer:
		return redact(nil, key, v.Resolve())
	case slog.KindGroup:
		attrs := v.Group()
		out := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			out[i] = slog.Attr{Key: a.Key, Value: redact(nil, a.Key, a.Value)}
		}
		return slog.GroupValue(out...)
	default:
		return v
	}
}

// NewHandler wraps h with the redacting formatters.
func NewHandler(h slog.Handler) slog.Handler { return newHandler(h) }

// NewConsole returns a logger writing human readable lines to w.
func NewConsole(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger writing pretty printed records to w.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger.
var Def = NewConsole(os.Stdout, slog.LevelDebug)

// Dev is a developer logger.
var Dev = NewDev(os.Stdout, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// Field returns an attribute for a header field keyed by its name.
// The value is logged redacted when it is secret or the name is sensitive.
func Field(name header.Name, val header.Value) slog.Attr {
	if name.IsSensitive() {
		val = val.IntoSecret()
	}
	return slog.Any(name.UTF8(), val)
}
