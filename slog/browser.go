package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/asrockind"
)

// Ensure LoggingBrowser implements asrockind.Browser at compile time.
var _ asrockind.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug-level logging of every
// navigation, wait, and markup read.
type LoggingBrowser struct {
	next   asrockind.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a logging decorator around next.
func NewLoggingBrowser(next asrockind.Browser, logger *slog.Logger) *LoggingBrowser {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingBrowser{next: next, logger: logger}
}

func (b *LoggingBrowser) Navigate(ctx context.Context, url string) error {
	start := time.Now()
	err := b.next.Navigate(ctx, url)
	b.logger.Debug("browser navigate",
		"url", url,
		"duration", time.Since(start),
		"err", err,
	)
	return err
}

func (b *LoggingBrowser) WaitAny(ctx context.Context, timeout time.Duration, selectors ...string) error {
	start := time.Now()
	err := b.next.WaitAny(ctx, timeout, selectors...)
	b.logger.Debug("browser wait",
		"selectors", selectors,
		"duration", time.Since(start),
		"err", err,
	)
	return err
}

func (b *LoggingBrowser) HTML() (string, error) {
	start := time.Now()
	html, err := b.next.HTML()
	b.logger.Debug("browser markup read",
		"bytes", len(html),
		"duration", time.Since(start),
		"err", err,
	)
	return html, err
}

func (b *LoggingBrowser) Alive() bool {
	return b.next.Alive()
}

func (b *LoggingBrowser) Close() error {
	err := b.next.Close()
	b.logger.Debug("browser closed", "err", err)
	return err
}
