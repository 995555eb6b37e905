package errors

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled reports
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by LogHandler and by packages that
// log through Logger. By default nothing is logged. Pass nil to restore the
// silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: invalidation decisions and load requests
//   - [slog.LevelWarn]: rejected property updates and malformed sources
//   - [slog.LevelError]: invariant violations and recovered panics
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LogHandler is an ErrorHandler that writes to the configured slog logger.
type LogHandler struct {
	// Verbose adds stack traces to the logged attributes.
	Verbose bool
}

// HandleError logs an Error. Property rejections log at warn level with the
// property name and value as attributes.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	attrs := []any{slog.String("op", err.Op), slog.String("kind", err.Kind.String())}
	var perr *PropertyError
	if stderrors.As(err.Err, &perr) {
		attrs = append(attrs, slog.String("prop", perr.Prop), slog.Any("value", perr.Value))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	level := slog.LevelWarn
	if err.Kind == KindInvariant || err.Kind == KindRender {
		level = slog.LevelError
	}
	Logger().Log(context.Background(), level, err.Error(), attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{slog.String("op", err.Op), slog.Any("value", err.Value)}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	Logger().Error("panic recovered", attrs...)
}
