package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/asrockind"
	"github.com/google/uuid"
)

// Search-method labels reported in the response envelope. The values are
// wire-compatible with existing clients of the original server and must not
// change.
const (
	MethodBrowserWithFallback = "Selenium + Fallback (requests)"
	MethodFallbackOnly        = "Fallback only (requests)"
)

// Availability is implemented by strategies that can become permanently
// unavailable, such as the browser path after a poisoned launch. The
// orchestrator skips strategies that report false.
type Availability interface {
	Available() bool
}

// Orchestrator runs an ordered list of search strategies with outer retry:
// per attempt it sleeps a randomized pre-search delay, tries each available
// strategy in order, and returns on the first non-empty result. When every
// strategy comes up empty it backs off with a doubled retry delay and tries
// again, up to the configured attempt cap. Exhausting all attempts yields
// an empty, well-formed result rather than an error.
type Orchestrator struct {
	strategies []asrockind.Searcher
	cfg        asrockind.Config
	delayer    asrockind.Delayer
	logger     *slog.Logger
}

// NewOrchestrator composes strategies in preference order (browser first,
// HTTP fallback second).
func NewOrchestrator(strategies []asrockind.Searcher, cfg asrockind.Config, delayer asrockind.Delayer, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		strategies: strategies,
		cfg:        cfg,
		delayer:    delayer,
		logger:     logger,
	}
}

// Method reports which scraping paths the next search can use, in the
// envelope's label vocabulary.
func (o *Orchestrator) Method() string {
	for _, s := range o.strategies {
		if av, ok := s.(Availability); ok && !av.Available() {
			return MethodFallbackOnly
		}
	}
	return MethodBrowserWithFallback
}

// Search runs the fallback chain for a validated query. The returned error
// is non-nil only for context cancellation; "nothing found" is an empty
// result.
func (o *Orchestrator) Search(ctx context.Context, query string) (asrockind.SearchResult, error) {
	logger := o.logger.With("search_id", uuid.NewString(), "query", query)

	for attempt := 1; attempt <= o.cfg.MaxRetries; attempt++ {
		logger.Info("search attempt", "attempt", attempt)

		if err := o.delayer.Delay(ctx, o.cfg.SearchDelay); err != nil {
			return asrockind.NewSearchResult(nil), err
		}

		for _, strategy := range o.strategies {
			if av, ok := strategy.(Availability); ok && !av.Available() {
				logger.Debug("skipping unavailable strategy", "strategy", strategy.Name())
				continue
			}

			products, err := strategy.Search(ctx, query)
			if err != nil {
				if ctx.Err() != nil {
					return asrockind.NewSearchResult(products), ctx.Err()
				}
				logger.Warn("strategy failed", "strategy", strategy.Name(), "err", err)
				continue
			}
			if len(products) > 0 {
				logger.Info("search succeeded", "strategy", strategy.Name(), "products", len(products))
				return asrockind.NewSearchResult(products), nil
			}
		}

		logger.Warn("no products found", "attempt", attempt)
		if attempt < o.cfg.MaxRetries {
			if err := o.delayer.Delay(ctx, o.cfg.RetryDelay.Doubled()); err != nil {
				return asrockind.NewSearchResult(nil), err
			}
		}
	}

	logger.Error("all search attempts failed")
	return asrockind.NewSearchResult(nil), nil
}
