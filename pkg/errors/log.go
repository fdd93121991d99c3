package errors

import "github.com/charmbracelet/log"

// LogHandler is a Handler that logs errors through charmbracelet/log.
type LogHandler struct {
	// Logger receives the log records. Nil falls back to log.Default().
	Logger *log.Logger
}

// HandleError logs a GridError at error level with structured fields.
func (h *LogHandler) HandleError(err *GridError) {
	if err == nil {
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Error("grid error", "op", err.Op, "kind", err.Kind.String(), "err", err.Err)
}
