package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/asrockind"
	"github.com/fwojciec/asrockind/fs"
	asrockhttp "github.com/fwojciec/asrockind/http"
	asrockmcp "github.com/fwojciec/asrockind/mcp"
	"github.com/fwojciec/asrockind/rod"
	"github.com/fwojciec/asrockind/scrape"
	asrockslog "github.com/fwojciec/asrockind/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line flags. Each flag overrides the matching
// environment variable; unset flags leave the environment value in place.
type CLI struct {
	ServerName      *string `name:"server-name" help:"MCP server name (env MCP_SERVER_NAME)"`
	BaseURL         *string `name:"base-url" help:"Catalog base URL (env ASROCK_BASE_URL)"`
	LogLevel        *string `name:"log-level" help:"Log level: DEBUG, INFO, WARN, ERROR (env LOG_LEVEL)"`
	PageLoadTimeout *int    `name:"page-load-timeout" help:"Page load timeout in seconds (env PAGE_LOAD_TIMEOUT)"`
	MaxRetries      *int    `name:"max-retries" help:"Search attempts before giving up (env MAX_RETRIES)"`
	MaxProducts     *int    `name:"max-products" help:"Maximum products scraped per search (env MAX_PRODUCTS)"`
	SaveDebugHTML   *bool   `name:"save-debug-html" help:"Save fetched pages for debugging (env SAVE_DEBUG_HTML)"`
	DebugHTMLPath   *string `name:"debug-html-path" help:"Directory for saved debug pages"`
}

// Main represents the program.
type Main struct {
	// BrowserFactory builds the headless-browser factory for a config.
	// Replaced in tests.
	BrowserFactory func(asrockind.Config) asrockind.BrowserFactory

	// Serve runs the wired MCP server. Replaced in tests.
	Serve func(*asrockmcp.Server) error
}

// NewMain returns a new instance of Main with production wiring.
func NewMain() *Main {
	return &Main{
		BrowserFactory: rod.Factory,
		Serve: func(s *asrockmcp.Server) error {
			return s.ServeStdio()
		},
	}
}

// Run wires the scraping stack and serves MCP requests. All logging goes to
// stderr because stdout carries the MCP protocol.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("asrockind"),
		kong.Description("MCP server exposing product search over the ASRock Industrial catalog."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := applyFlags(asrockind.ConfigFromEnv(), cli)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	logger.Info("starting server",
		"server_name", cfg.ServerName,
		"base_url", cfg.BaseURL,
		"max_retries", cfg.MaxRetries,
		"max_products", cfg.MaxProducts,
		"page_load_timeout", cfg.PageLoadTimeout,
		"save_debug_html", cfg.SaveDebugHTML,
	)

	delayer := asrockind.RandomDelayer{}

	factory := m.BrowserFactory(cfg)
	loggedFactory := func() (asrockind.Browser, error) {
		b, err := factory()
		if err != nil {
			return nil, err
		}
		return asrockslog.NewLoggingBrowser(b, logger), nil
	}

	session := scrape.NewSession(loggedFactory, cfg, delayer, logger)
	defer session.Close()
	if !session.Warm() {
		logger.Warn("browser unavailable, all searches will use the fallback path")
	}

	var opts []scrape.BrowserOption
	if cfg.SaveDebugHTML {
		opts = append(opts, scrape.WithDebugWriter(
			asrockslog.NewLoggingDebugWriter(fs.NewDebugWriter(cfg.DebugHTMLPath), logger)))
	}
	browser := scrape.NewBrowserSearcher(session, cfg, delayer, logger, opts...)

	fallback := asrockhttp.NewSearcher(cfg, delayer, logger)
	defer fallback.Close()

	orchestrator := scrape.NewOrchestrator([]asrockind.Searcher{
		asrockslog.NewLoggingSearcher(browser, logger),
		asrockslog.NewLoggingSearcher(fallback, logger),
	}, cfg, delayer, logger)

	return m.Serve(asrockmcp.NewServer(orchestrator, cfg, logger))
}

func applyFlags(cfg asrockind.Config, cli *CLI) asrockind.Config {
	if cli.ServerName != nil {
		cfg.ServerName = *cli.ServerName
	}
	if cli.BaseURL != nil {
		cfg.BaseURL = *cli.BaseURL
	}
	if cli.LogLevel != nil {
		cfg.LogLevel = *cli.LogLevel
	}
	if cli.PageLoadTimeout != nil {
		cfg.PageLoadTimeout = time.Duration(*cli.PageLoadTimeout) * time.Second
	}
	if cli.MaxRetries != nil {
		cfg.MaxRetries = *cli.MaxRetries
	}
	if cli.MaxProducts != nil {
		cfg.MaxProducts = *cli.MaxProducts
	}
	if cli.SaveDebugHTML != nil {
		cfg.SaveDebugHTML = *cli.SaveDebugHTML
	}
	if cli.DebugHTMLPath != nil {
		cfg.DebugHTMLPath = *cli.DebugHTMLPath
	}
	return cfg
}

func logLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
