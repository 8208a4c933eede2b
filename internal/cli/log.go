// Package cli implements the roomcrawl command-line interface.
//
// # Commands
//
//   - check: load a world file and report every problem found
//   - play: explore a world in the terminal
//   - map: export a world's room graph as DOT, SVG or PNG
//
// Each command takes an optional world file (.json, .yaml, .yml or .toml).
// Without one, the file named by ROOMCRAWL_WORLD is used, and failing that
// the world bundled with the binary.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// newLogger creates a new logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logDiagnostics logs each diagnostic at its severity, with the room,
// direction and target as fields when they are set.
func logDiagnostics(l *log.Logger, diags world.Diagnostics) {
	for _, d := range diags {
		var kv []any
		if d.Room != "" {
			kv = append(kv, "room", d.Room)
		}
		if d.Direction != "" {
			kv = append(kv, "direction", d.Direction)
		}
		if d.Target != "" {
			kv = append(kv, "target", d.Target)
		}

		switch d.Severity {
		case world.SeverityError:
			l.Error(d.Message, kv...)
		default:
			l.Warn(d.Message, kv...)
		}
	}
}
