package grid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Handlers are single-threaded, but the
// logger may be swapped from another goroutine while a frame is drawn.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by grid and its sub-packages.
// By default grid produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by grid:
//   - [slog.LevelDebug]: per-frame diagnostics (flush statistics, cell
//     overwrites, label cache misses)
//   - [slog.LevelWarn]: cells dropped because two relocated cells landed
//     on the same position
//
// Example:
//
//	grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by grid.
// Sub-packages (integration/ebitengrid, integration/gogpugrid) call this to share the same
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
