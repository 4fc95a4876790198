package asrockind

import (
	"context"
	"time"
)

// Browser is the capability surface the scraping layer needs from a browser
// automation library. Keeping it narrow isolates the session lifecycle state
// machine from any particular library's API.
type Browser interface {
	// Navigate loads the URL and waits for the page load event.
	Navigate(ctx context.Context, url string) error

	// WaitAny waits up to timeout for at least one element matching any of
	// the CSS selectors to appear in the DOM. It returns an error on
	// timeout; callers decide whether that is fatal.
	WaitAny(ctx context.Context, timeout time.Duration, selectors ...string) error

	// HTML returns the current rendered markup.
	HTML() (string, error)

	// Alive reports whether the underlying browser process still responds.
	// It must be cheap: a no-op property read, not a navigation.
	Alive() bool

	// Close releases browser resources.
	// Must be called when the Browser is no longer needed.
	Close() error
}

// BrowserFactory launches a new Browser. The session layer calls it lazily
// and treats a returned error as unrecoverable for the process lifetime.
type BrowserFactory func() (Browser, error)
