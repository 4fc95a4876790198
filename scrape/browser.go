package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/asrockind"
	"github.com/fwojciec/asrockind/goquery"
)

// CSS selectors for the catalog's rendered pages. The browser path is
// deliberately stricter than the HTTP fallback; see goquery.Specifications.
const (
	selectorProductLink = "a.whole-link.d-block"
	selectorNoResult    = "div.no-result"
	selectorProductInfo = ".product-info"
)

// Ensure BrowserSearcher implements asrockind.Searcher at compile time.
var _ asrockind.Searcher = (*BrowserSearcher)(nil)

// BrowserSearcher implements the browser-driven search path: it renders the
// search-results page and each product-detail page in a real browser, so
// script-generated content is present before extraction.
type BrowserSearcher struct {
	session *Session
	cfg     asrockind.Config
	delayer asrockind.Delayer
	debug   asrockind.DebugWriter // nil disables page dumps
	logger  *slog.Logger
}

// BrowserOption configures a BrowserSearcher.
type BrowserOption func(*BrowserSearcher)

// WithDebugWriter enables raw page dumps for offline inspection.
func WithDebugWriter(w asrockind.DebugWriter) BrowserOption {
	return func(s *BrowserSearcher) {
		s.debug = w
	}
}

// NewBrowserSearcher creates the browser-driven search strategy on top of a
// Session.
func NewBrowserSearcher(session *Session, cfg asrockind.Config, delayer asrockind.Delayer, logger *slog.Logger, opts ...BrowserOption) *BrowserSearcher {
	if logger == nil {
		logger = slog.Default()
	}
	s := &BrowserSearcher{
		session: session,
		cfg:     cfg,
		delayer: delayer,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy in logs.
func (s *BrowserSearcher) Name() string { return "browser" }

// Available reports whether the browser path can still be attempted.
// The orchestrator skips unavailable strategies.
func (s *BrowserSearcher) Available() bool {
	return !s.session.Poisoned()
}

// Search renders the search-results page and scrapes each discovered
// product sequentially. Page-load failures and result-wait timeouts yield
// an empty slice, not an error; per-product failures are logged and that
// product is skipped.
func (s *BrowserSearcher) Search(ctx context.Context, query string) ([]asrockind.Product, error) {
	searchURL := s.cfg.SearchURL(query)
	s.logger.Info("searching", "strategy", s.Name(), "url", searchURL)

	browser, ok := s.session.SafeNavigate(ctx, searchURL)
	if !ok {
		s.logger.Error("failed to load search page", "url", searchURL)
		return nil, nil
	}

	if err := browser.WaitAny(ctx, s.cfg.ElementWaitTimeout, selectorProductLink, selectorNoResult); err != nil {
		s.logger.Warn("timeout waiting for search results", "query", query, "err", err)
		return nil, nil
	}

	html, err := browser.HTML()
	if err != nil {
		s.logger.Error("failed to read search page markup", "err", err)
		return nil, nil
	}
	s.savePage("search_results.html", html)

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
		if err := ctx.Err(); err != nil {
			return products, err
		}

		product, err := s.scrapeProduct(ctx, link, i+1)
		if err != nil {
			s.logger.Error("error scraping product", "num", i+1, "url", link.URL, "err", err)
		} else {
			products = append(products, *product)
			s.logger.Info("scraped product", "num", i+1, "name", product.Name)
		}

		if i < len(page.Links)-1 {
			if err := s.delayer.Delay(ctx, s.cfg.ProductDelay); err != nil {
				return products, err
			}
		}
	}

	return products, nil
}

// scrapeProduct loads one product-detail page and extracts its
// specification tables.
func (s *BrowserSearcher) scrapeProduct(ctx context.Context, link goquery.ProductLink, num int) (*asrockind.Product, error) {
	browser, ok := s.session.SafeNavigate(ctx, link.URL)
	if !ok {
		return nil, asrockind.Errorf(asrockind.EUNAVAILABLE, "failed to load product page %s", link.URL)
	}

	// A missing product-info marker is non-fatal: extract whatever loaded.
	if err := browser.WaitAny(ctx, s.cfg.ElementWaitTimeout, selectorProductInfo); err != nil {
		s.logger.Warn("timeout waiting for product details", "url", link.URL, "err", err)
	}

	html, err := browser.HTML()
	if err != nil {
		return nil, err
	}
	s.savePage(fmt.Sprintf("product_%d.html", num), html)

	specs, err := goquery.Specifications(html)
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

// savePage dumps markup through the debug writer when one is configured.
// Write failures are logged, never fatal.
func (s *BrowserSearcher) savePage(name, html string) {
	if s.debug == nil {
		return
	}
	if err := s.debug.SavePage(name, html); err != nil {
		s.logger.Warn("failed to save debug HTML", "name", name, "err", err)
	} else {
		s.logger.Debug("saved debug HTML", "name", name)
	}
}
