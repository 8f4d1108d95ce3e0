package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes errors through slog.
type LogHandler struct {
	// Logger receives the records. Nil uses slog.Default().
	Logger *slog.Logger
	// Verbose attaches stack traces to panic and callback records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a UIError.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if err.Node != "" {
		attrs = append(attrs, "node", err.Node)
	}
	h.logger().Error("paneui error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("paneui panic", attrs...)
}

// HandleCallbackError logs a CallbackError.
func (h *LogHandler) HandleCallbackError(err *CallbackError) {
	if err == nil {
		return
	}
	attrs := []any{"widget", err.Widget, "callback", err.Callback, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Warn("paneui callback failed", attrs...)
}
