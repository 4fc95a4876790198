// Package slog provides logging decorators over the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/asrockind"
)

// Ensure LoggingSearcher implements asrockind.Searcher.
var _ asrockind.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with timing and outcome logging.
type LoggingSearcher struct {
	next   asrockind.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next asrockind.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search logs the query and result size and delegates to the wrapped
// searcher.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (products []asrockind.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"strategy", s.next.Name(),
			"query", query,
			"products", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// Name delegates to the wrapped searcher.
func (s *LoggingSearcher) Name() string {
	return s.next.Name()
}

// Available delegates to the wrapped searcher when it reports availability,
// so the decorator stays transparent to the orchestrator's strategy
// skipping.
func (s *LoggingSearcher) Available() bool {
	if av, ok := s.next.(interface{ Available() bool }); ok {
		return av.Available()
	}
	return true
}
