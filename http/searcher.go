// Package http provides the lightweight fallback implementation of
// asrockind.Searcher: plain HTTP GETs plus static HTML parsing, for use when
// the browser path is unavailable or unproductive. No JavaScript execution,
// no waits; content must be present in the initial response.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/fwojciec/asrockind"
	"github.com/fwojciec/asrockind/goquery"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond limits outbound traffic for politeness.
const DefaultRequestsPerSecond = 1.0

// Ensure Searcher implements asrockind.Searcher at compile time.
var _ asrockind.Searcher = (*Searcher)(nil)

// Searcher is the requests-style fallback scraper. A single persistent
// client with browser-like headers issues one GET per page; any failure
// propagates as "no products" rather than an error.
type Searcher struct {
	client  *http.Client
	cfg     asrockind.Config
	delayer asrockind.Delayer
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithRateLimit overrides the outbound request rate.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRateLimit(rps float64) Option {
	return func(s *Searcher) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSearcher creates the HTTP fallback strategy. The client timeout comes
// from the configured page-load timeout.
func NewSearcher(cfg asrockind.Config, delayer asrockind.Delayer, logger *slog.Logger, opts ...Option) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Searcher{
		client:  &http.Client{Timeout: cfg.PageLoadTimeout},
		cfg:     cfg,
		delayer: delayer,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy in logs.
func (s *Searcher) Name() string { return "fallback" }

// Search fetches the search-results page and each discovered product page
// with plain GETs. Fetch or parse failures yield an empty slice; per-product
// failures are logged and skipped.
func (s *Searcher) Search(ctx context.Context, query string) ([]asrockind.Product, error) {
	searchURL := s.cfg.SearchURL(query)
	s.logger.Info("searching", "strategy", s.Name(), "url", searchURL)

	html, err := s.get(ctx, searchURL)
	if err != nil {
		s.logger.Error("fallback search failed", "url", searchURL, "err", err)
		return nil, nil
	}

	page, err := goquery.ParseSearchPage(html, s.cfg.BaseURL, s.cfg.MaxProducts)
	if err != nil {
		s.logger.Error("failed to parse search page", "err", err)
		return nil, nil
	}
	if page.NoResults {
		s.logger.Info("no results found", "query", query)
		return nil, nil
	}
	s.logger.Info("found product links", "count", len(page.Links))

	var products []asrockind.Product
	for i, link := range page.Links {
		product, err := s.scrapeProduct(ctx, link)
		if err != nil {
			s.logger.Error("error scraping product", "num", i+1, "url", link.URL, "err", err)
		} else {
			products = append(products, *product)
			s.logger.Info("scraped product", "num", i+1, "name", product.Name)
		}

		if i < len(page.Links)-1 {
			if err := s.delayer.Delay(ctx, s.cfg.FallbackProductDelay); err != nil {
				return products, err
			}
		}
	}

	return products, nil
}

// scrapeProduct fetches one product-detail page and extracts specifications
// with the permissive selector set.
func (s *Searcher) scrapeProduct(ctx context.Context, link goquery.ProductLink) (*asrockind.Product, error) {
	html, err := s.get(ctx, link.URL)
	if err != nil {
		return nil, err
	}

	specs, err := goquery.LooseSpecifications(html)
	if err != nil {
		s.logger.Error("error extracting specifications", "url", link.URL, "err", err)
		specs = map[string]string{}
	}

	return &asrockind.Product{
		Name:           link.Name,
		URL:            link.URL,
		Specifications: specs,
	}, nil
}

// get issues a rate-limited GET with browser-like headers and returns the
// response body. Non-2xx statuses are errors.
func (s *Searcher) get(ctx context.Context, url string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", asrockind.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases resources. The shared transport keeps no state worth
// flushing, so this only drops idle connections.
func (s *Searcher) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
