package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/asrockind"
	"github.com/fwojciec/asrockind/mock"
	asrockslog "github.com/fwojciec/asrockind/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingBrowser(t *testing.T) {
	t.Parallel()

	t.Run("logs navigation with url and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Browser{
			NavigateFn: func(ctx context.Context, url string) error { return nil },
		}

		b := asrockslog.NewLoggingBrowser(inner, debugLogger(&buf))
		require.NoError(t, b.Navigate(context.Background(), "https://www.asrockind.com"))

		output := buf.String()
		assert.Contains(t, output, "browser navigate")
		assert.Contains(t, output, "url=https://www.asrockind.com")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs markup size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Browser{
			HTMLFn: func() (string, error) { return "<html></html>", nil },
		}

		b := asrockslog.NewLoggingBrowser(inner, debugLogger(&buf))
		html, err := b.HTML()

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "bytes=13")
	})

	t.Run("logs wait errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Browser{
			WaitAnyFn: func(ctx context.Context, timeout time.Duration, selectors ...string) error {
				return asrockind.Errorf(asrockind.ENOTFOUND, "no selector matched")
			},
		}

		b := asrockslog.NewLoggingBrowser(inner, debugLogger(&buf))
		err := b.WaitAny(context.Background(), time.Second, "div.no-result")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "no selector matched")
	})

	t.Run("delegates liveness without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Browser{
			AliveFn: func() bool { return true },
		}

		b := asrockslog.NewLoggingBrowser(inner, debugLogger(&buf))
		assert.True(t, b.Alive())
		assert.Empty(t, buf.String())
	})
}
