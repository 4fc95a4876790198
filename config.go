package asrockind

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// UserAgent is the spoofed browser identity used on both scraping paths.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config holds all tunables for the server and both scraping paths. It is
// constructed once at startup from defaults plus environment overrides and
// passed by value into component constructors; nothing mutates it afterwards.
type Config struct {
	// Server identification and catalog location.
	ServerName string
	BaseURL    string
	LogLevel   string

	// Timeouts.
	PageLoadTimeout    time.Duration
	ElementWaitTimeout time.Duration
	ImplicitWait       time.Duration

	// Retry settings.
	MaxRetries int
	RetryDelay DelayRange

	// Politeness delays.
	SearchDelay          DelayRange
	ProductDelay         DelayRange
	FallbackProductDelay DelayRange

	// Product limits.
	MaxProducts int

	// Debug artifacts.
	SaveDebugHTML bool
	DebugHTMLPath string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ServerName:           "mcp-asrockind",
		BaseURL:              "https://www.asrockind.com",
		LogLevel:             "INFO",
		PageLoadTimeout:      15 * time.Second,
		ElementWaitTimeout:   10 * time.Second,
		ImplicitWait:         3 * time.Second,
		MaxRetries:           2,
		RetryDelay:           DelayRange{Min: 2 * time.Second, Max: 4 * time.Second},
		SearchDelay:          DelayRange{Min: 1 * time.Second, Max: 2 * time.Second},
		ProductDelay:         DelayRange{Min: 1 * time.Second, Max: 2 * time.Second},
		FallbackProductDelay: DelayRange{Min: 500 * time.Millisecond, Max: 1 * time.Second},
		MaxProducts:          3,
		SaveDebugHTML:        false,
		DebugHTMLPath:        "debug_pages",
	}
}

// ConfigFromEnv returns DefaultConfig overridden by environment variables.
// Numeric values are coerced without range validation: a negative retry
// count or zero timeout passes through uncorrected. Malformed numbers keep
// the default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MCP_SERVER_NAME"); v != "" {
		cfg.ServerName = v
	}
	if v := os.Getenv("ASROCK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.SaveDebugHTML = strings.EqualFold(os.Getenv("SAVE_DEBUG_HTML"), "true")
	if v := os.Getenv("PAGE_LOAD_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.PageLoadTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("MAX_PRODUCTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxProducts = n
		}
	}

	return cfg
}

// SearchURL builds the catalog search URL for a query.
func (c Config) SearchURL(query string) string {
	return c.BaseURL + "/en-gb/product/search?search=" + url.QueryEscape(query)
}

// ResolveURL resolves a possibly relative href against the catalog base URL.
// Unparseable input is returned as-is.
func (c Config) ResolveURL(href string) string {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
