// Package rod provides a browser automation implementation of
// asrockind.Browser using Chrome via the rod library.
package rod

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/asrockind"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// spoofWebdriver hides the automation marker some sites check for.
const spoofWebdriver = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Ensure Browser implements asrockind.Browser at compile time.
var _ asrockind.Browser = (*Browser)(nil)

// Browser drives a single headless Chrome process. It owns one page that is
// reused across navigations within a search session.
type Browser struct {
	browser         *rod.Browser
	launcher        *launcher.Launcher
	page            *rod.Page
	pageLoadTimeout time.Duration
	implicitWait    time.Duration
}

// Factory returns an asrockind.BrowserFactory that launches Browsers with
// the given configuration. The session layer calls it lazily.
func Factory(cfg asrockind.Config) asrockind.BrowserFactory {
	return func() (asrockind.Browser, error) {
		return NewBrowser(cfg)
	}
}

// NewBrowser launches a headless Chrome with images disabled for speed and
// automation fingerprints masked. Close must be called when the Browser is
// no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(cfg asrockind.Config) (*Browser, error) {
	lnchr := launcher.New().
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("blink-settings", "imagesEnabled=false").
		Set("disable-extensions").
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-popup-blocking").
		Set("disable-infobars").
		Set("disable-notifications").
		Set("window-size", "1920,1080").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := setupAntiDetection(page); err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("anti-detection setup: %w", err)
	}

	return &Browser{
		browser:         browser,
		launcher:        lnchr,
		page:            page,
		pageLoadTimeout: cfg.PageLoadTimeout,
		implicitWait:    cfg.ImplicitWait,
	}, nil
}

// setupAntiDetection overrides the user agent and removes the
// navigator.webdriver property before any page script runs.
func setupAntiDetection(page *rod.Page) error {
	err := proto.NetworkSetUserAgentOverride{UserAgent: asrockind.UserAgent}.Call(page)
	if err != nil {
		return err
	}
	_, err = page.EvalOnNewDocument(spoofWebdriver)
	return err
}

// Navigate loads the URL and waits for the page load event, both bounded by
// the configured page-load timeout.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	page := b.page.Context(ctx).Timeout(b.pageLoadTimeout)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// WaitAny waits until at least one element matching any of the selectors is
// present. A non-positive timeout falls back to the configured implicit
// wait.
func (b *Browser) WaitAny(ctx context.Context, timeout time.Duration, selectors ...string) error {
	if timeout <= 0 {
		timeout = b.implicitWait
	}
	race := b.page.Context(ctx).Timeout(timeout).Race()
	for _, sel := range selectors {
		race = race.Element(sel)
	}
	if _, err := race.Do(); err != nil {
		return asrockind.Errorf(asrockind.ENOTFOUND,
			"no element matching %q appeared within %s", strings.Join(selectors, ", "), timeout)
	}
	return nil
}

// HTML returns the current rendered markup.
func (b *Browser) HTML() (string, error) {
	return b.page.HTML()
}

// Alive reports whether the browser process still responds to a cheap
// target-info read.
func (b *Browser) Alive() bool {
	_, err := b.page.Info()
	return err == nil
}

// Close shuts down the browser and its launcher process.
func (b *Browser) Close() error {
	err := b.browser.Close()
	b.launcher.Kill()
	return err
}
