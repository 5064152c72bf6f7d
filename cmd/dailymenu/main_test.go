package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/dailymenu/pkg/config"
)

func testConfig(t *testing.T, apiKey string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Listen = "127.0.0.1:0"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Database.DSN = "file:" + filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxOpenConns = 1
	cfg.LLM.Endpoint = "http://127.0.0.1:1/v1" // never called at startup
	cfg.LLM.APIKey = apiKey
	cfg.LLM.Model = "gpt-4o-mini"
	cfg.Menu.HistoryDepth = 5
	cfg.Menu.NotificationTTL = 3 * time.Second
	return cfg
}

func TestRun_MissingAPIKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, testConfig(t, ""), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm api key is missing")
}

func TestRun_ServerStartStop(t *testing.T) {
	// grab a free port for the server
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testConfig(t, "test-key")
	cfg.Server.Listen = fmt.Sprintf("127.0.0.1:%d", port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErr := make(chan error, 1)
	go func() { serverErr <- run(ctx, cfg, false) }()

	// wait for the server to come up
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	// shutdown
	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
		// the function should complete without panic
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "secret2")
		// secrets configuration is internal to lgr
	})

	t.Run("empty secrets skipped", func(t *testing.T) {
		setupLog(false, "", "")
		// empty strings are dropped before lgr.Secret sees them
	})
}
