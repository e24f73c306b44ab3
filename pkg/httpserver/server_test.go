package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispenser/pkg/httpserver"
	"github.com/dmitrymomot/dispenser/pkg/logger"
)

const localAddr = "127.0.0.1:0"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

// startServer runs srv in the background and returns the bound address and Run's result channel.
func startServer(t *testing.T, ctx context.Context, srv *httpserver.Server, started <-chan string, h http.Handler) (string, <-chan error) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	select {
	case addr := <-started:
		return addr, done
	case err := <-done:
		require.FailNow(t, "server exited early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return "", done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func startedHook() (chan string, httpserver.Option) {
	ch := make(chan string, 1)
	return ch, httpserver.WithStartHook(func(addr string, _ *slog.Logger) { ch <- addr })
}

func TestRunAndCancel(t *testing.T) {
	t.Parallel()
	started, hook := startedHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithoutSignals(),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		hook,
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, done := startServer(t, ctx, srv, started, okHandler())
	assert.Equal(t, addr, srv.Addr().String())

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	waitDone(t, done)
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown after run is a no-op")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()
	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), httpserver.WithoutSignals(), hook)

	_, done := startServer(t, context.Background(), srv, started, okHandler())

	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
	waitDone(t, done)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Nil(t, srv.Addr())
}

func TestStartError(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(":invalid"), httpserver.WithoutSignals())
	err := srv.Run(context.Background(), okHandler())
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAddressInUse(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", localAddr)
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()), httpserver.WithoutSignals())
	assert.ErrorIs(t, srv.Run(context.Background(), okHandler()), httpserver.ErrStart)
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()
	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), httpserver.WithoutSignals(), hook)
	ctx, cancel := context.WithCancel(context.Background())

	_, done := startServer(t, ctx, srv, started, okHandler())

	err := srv.Run(context.Background(), okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	waitDone(t, done)
}

func TestHooksAndLogging(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	var stopped atomic.Bool
	started, hook := startedHook()

	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithoutSignals(),
		httpserver.WithLogger(logger.New(logger.WithOutput(&logs))),
		httpserver.WithLogger(nil),
		hook,
		httpserver.WithStopHook(func(_ *slog.Logger) { stopped.Store(true) }),
	)
	ctx, cancel := context.WithCancel(context.Background())

	_, done := startServer(t, ctx, srv, started, nil)
	cancel()
	waitDone(t, done)

	assert.True(t, stopped.Load(), "stop hook not executed")
	assert.Contains(t, logs.String(), "http server started")
	assert.Contains(t, logs.String(), "http server stopped")
}

func TestNilHandlerServesNotFound(t *testing.T) {
	t.Parallel()
	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), httpserver.WithoutSignals(), hook)
	ctx, cancel := context.WithCancel(context.Background())

	addr, done := startServer(t, ctx, srv, started, nil)
	resp, err := http.Get("http://" + addr + "/anything")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	waitDone(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	started, hook := startedHook()
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            localAddr,
		ReadTimeout:     time.Second,
		ShutdownTimeout: 50 * time.Millisecond,
	}, httpserver.WithoutSignals(), hook)
	ctx, cancel := context.WithCancel(context.Background())

	addr, done := startServer(t, ctx, srv, started, okHandler())
	assert.NotEqual(t, localAddr, addr, "port should be resolved")

	cancel()
	waitDone(t, done)
}

// Not parallel: delivers SIGTERM to the test process.
func TestSignalShutdown(t *testing.T) {
	started, hook := startedHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		hook,
	)

	_, done := startServer(t, context.Background(), srv, started, okHandler())

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))
	waitDone(t, done)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"write", func() { httpserver.WithWriteTimeout(0) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checks     []func(context.Context) error
		wantStatus int
		wantBody   string
	}{
		{name: "liveness", wantStatus: http.StatusOK, wantBody: "ALIVE"},
		{
			name:       "ready",
			checks:     []func(context.Context) error{func(context.Context) error { return nil }},
			wantStatus: http.StatusOK,
			wantBody:   "READY",
		},
		{
			name: "not ready",
			checks: []func(context.Context) error{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("machine offline") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
