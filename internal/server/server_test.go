package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/handler"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/metrics"
	"github.com/MKhiriev/spotted-relay/internal/service"
	"github.com/MKhiriev/spotted-relay/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloser struct {
	closed atomic.Int32
	err    error
}

func (f *fakeCloser) Close(context.Context) error {
	f.closed.Add(1)
	return f.err
}

type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

func newTestServer(t *testing.T, worker workers.Worker, closers ...Closer) (*server, net.Listener) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := config.Server{HTTPAddress: listener.Addr().String(), ShutdownTimeout: time.Second}
	srv := newServer(newHTTPServer(mux, cfg, logger.Nop()), workers.NewWorkers(worker), cfg.ShutdownTimeout, logger.Nop(), closers...)
	return srv, listener
}

func TestServer_ServesAndShutsDownGracefully(t *testing.T) {
	worker := &blockingWorker{}
	closer := &fakeCloser{}
	srv, listener := newTestServer(t, worker, closer)

	done := make(chan error, 1)
	go func() {
		done <- srv.serve(context.Background(), listener)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 10*time.Millisecond)

	srv.Shutdown()
	srv.Shutdown()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, worker.stopped.Load())
	assert.EqualValues(t, 1, closer.closed.Load())
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	worker := &blockingWorker{}
	closer := &fakeCloser{err: errors.New("disconnect failed")}
	srv, listener := newTestServer(t, worker, closer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.serve(ctx, listener)
	}()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disconnect failed")
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, worker.stopped.Load())
	assert.EqualValues(t, 1, closer.closed.Load())
}

func TestServer_ListenerFailureStopsWorkers(t *testing.T) {
	worker := &blockingWorker{}
	closer := &fakeCloser{}
	srv, listener := newTestServer(t, worker, closer)
	require.NoError(t, listener.Close())

	err := srv.serve(context.Background(), listener)

	require.Error(t, err)
	assert.True(t, worker.stopped.Load())
	assert.EqualValues(t, 1, closer.closed.Load())
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(nil, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_RequiresListenAddress(t *testing.T) {
	cfg := config.Defaults()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, metrics.New(), logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoListenAddress)

	srv, err := NewServer(handlers, nil, cfg.Server, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}
