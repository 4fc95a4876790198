// Package scrape provides product-search orchestration: the browser session
// lifecycle, the browser-driven search flow, and the orchestrator that
// composes search strategies with retry and fallback semantics.
package scrape

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/asrockind"
)

// Session owns the browser process used by the browser-driven search path.
// Its lifecycle is a small state machine: uninitialized until first use,
// ready after a successful launch, and permanently poisoned once a launch
// fails. A poisoned session never attempts to launch again for the process
// lifetime, so a missing Chrome binary costs one failed launch rather than
// one per search.
//
// Session guards its state with a mutex so the poisoned flag stays
// race-free even if the tool boundary ever dispatches calls concurrently.
type Session struct {
	factory    asrockind.BrowserFactory
	delayer    asrockind.Delayer
	maxRetries int
	retryDelay asrockind.DelayRange
	logger     *slog.Logger

	mu       sync.Mutex
	browser  asrockind.Browser
	poisoned bool
}

// NewSession creates a Session that launches browsers lazily via factory.
// Navigation retry counts and backoff come from cfg.
func NewSession(factory asrockind.BrowserFactory, cfg asrockind.Config, delayer asrockind.Delayer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		factory:    factory,
		delayer:    delayer,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}
}

// Poisoned reports whether browser launching has failed permanently.
func (s *Session) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

// Warm eagerly launches the browser so the first search does not pay the
// startup cost. A failed launch poisons the session; the returned bool
// reports readiness.
func (s *Session) Warm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ensure()
	return ok
}

// ensure returns a live browser, relaunching if the current one fails its
// liveness probe. Must be called with mu held. A launch failure poisons the
// session.
func (s *Session) ensure() (asrockind.Browser, bool) {
	if s.poisoned {
		return nil, false
	}
	if s.browser != nil {
		if s.browser.Alive() {
			return s.browser, true
		}
		// Soft reset: the process died underneath us.
		s.logger.Info("browser session lost, relaunching")
		_ = s.browser.Close()
		s.browser = nil
	}

	browser, err := s.factory()
	if err != nil {
		s.logger.Error("browser launch failed, falling back permanently", "err", err)
		s.poisoned = true
		return nil, false
	}
	s.browser = browser
	s.logger.Info("browser session ready")
	return browser, true
}

// SafeNavigate navigates to the URL, retrying up to the configured attempt
// cap with randomized backoff between attempts. It reports failure instead
// of returning an error: a false return means the page could not be loaded
// (or the session is poisoned) and the caller should treat the navigation
// as yielding nothing. On success it returns the ready browser for
// follow-up waits and markup reads.
func (s *Session) SafeNavigate(ctx context.Context, url string) (asrockind.Browser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		browser, ok := s.ensure()
		if !ok {
			return nil, false
		}

		err := browser.Navigate(ctx, url)
		if err == nil {
			return browser, true
		}
		s.logger.Warn("navigation failed", "url", url, "attempt", attempt, "err", err)

		if attempt < s.maxRetries {
			if err := s.delayer.Delay(ctx, s.retryDelay); err != nil {
				return nil, false
			}
		}
	}
	return nil, false
}

// Close releases the browser if one is running. Safe to call multiple
// times; a poisoned session closes cleanly.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	return err
}
