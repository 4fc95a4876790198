package slog

import (
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/asrockind"
)

// Ensure LoggingDebugWriter implements asrockind.DebugWriter.
var _ asrockind.DebugWriter = (*LoggingDebugWriter)(nil)

// LoggingDebugWriter wraps a DebugWriter, logging each dump with a content
// hash so repeated scrapes of an unchanged page are easy to spot when
// diagnosing idempotence issues.
type LoggingDebugWriter struct {
	next   asrockind.DebugWriter
	logger *slog.Logger
}

// NewLoggingDebugWriter creates a new LoggingDebugWriter.
func NewLoggingDebugWriter(next asrockind.DebugWriter, logger *slog.Logger) *LoggingDebugWriter {
	return &LoggingDebugWriter{next: next, logger: logger}
}

// SavePage logs the dump and delegates to the wrapped writer.
func (w *LoggingDebugWriter) SavePage(name string, html string) (err error) {
	defer func() {
		w.logger.Debug("debug page",
			"name", name,
			"bytes", len(html),
			"hash", xxhash.Sum64String(html),
			"err", err,
		)
	}()
	return w.next.SavePage(name, html)
}
