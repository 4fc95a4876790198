package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/asrockind"
	main "github.com/fwojciec/asrockind/cmd/asrockind"
	asrockmcp "github.com/fwojciec/asrockind/mcp"
	"github.com/fwojciec/asrockind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMain returns a Main that never launches a real browser or touches
// stdio. The captured server is returned through the pointer.
func testMain(served **asrockmcp.Server) *main.Main {
	m := main.NewMain()
	m.BrowserFactory = func(asrockind.Config) asrockind.BrowserFactory {
		return func() (asrockind.Browser, error) {
			return &mock.Browser{
				AliveFn: func() bool { return true },
				CloseFn: func() error { return nil },
			}, nil
		}
	}
	m.Serve = func(s *asrockmcp.Server) error {
		if served != nil {
			*served = s
		}
		return nil
	}
	return m
}

func TestRun(t *testing.T) {
	t.Run("wires and serves", func(t *testing.T) {
		var served *asrockmcp.Server
		m := testMain(&served)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)
		require.NoError(t, err)
		require.NotNil(t, served)
		assert.Contains(t, stderr.String(), "starting server")
		assert.Contains(t, stderr.String(), "mcp-asrockind")
		assert.Empty(t, stdout.String())
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("MCP_SERVER_NAME", "from-env")
		t.Setenv("MAX_PRODUCTS", "7")

		m := testMain(nil)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--server-name", "from-flag"}, &bytes.Buffer{}, stderr)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "from-flag")
		assert.NotContains(t, stderr.String(), "from-env")
		assert.Contains(t, stderr.String(), "max_products=7")
	})

	t.Run("warns when the browser cannot launch", func(t *testing.T) {
		m := testMain(nil)
		m.BrowserFactory = func(asrockind.Config) asrockind.BrowserFactory {
			return func() (asrockind.Browser, error) {
				return nil, asrockind.Errorf(asrockind.EUNAVAILABLE, "no chrome")
			}
		}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, &bytes.Buffer{}, stderr)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "fallback path")
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		m := testMain(nil)

		err := m.Run(context.Background(), []string{"--no-such-flag"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
