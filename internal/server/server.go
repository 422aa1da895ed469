package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/handler"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	closers    []Closer

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownCh      chan struct{}

	logger *logger.Logger
}

// NewServer builds the HTTP server from handlers. Background workers run for
// the lifetime of the server; closers are released after the listener has
// drained.
func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger, closers ...Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return newServer(newHTTPServer(handlers.HTTP.Init(), cfg, logger), bgWorkers, cfg.ShutdownTimeout, logger, closers...), nil
}

func newServer(httpSrv *httpServer, bgWorkers *workers.Workers, shutdownTimeout time.Duration, logger *logger.Logger, closers ...Closer) *server {
	if bgWorkers == nil {
		bgWorkers = workers.NewWorkers()
	}
	return &server{
		httpServer:      httpSrv,
		workers:         bgWorkers,
		closers:         closers,
		shutdownTimeout: shutdownTimeout,
		shutdownCh:      make(chan struct{}),
		logger:          logger,
	}
}

// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received, Shutdown is
// called or the listener fails, then shuts everything down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := s.httpServer.Listen()
	if err != nil {
		s.logger.Err(err).Msg("failed to listen")
		s.closeResources()
		return
	}

	if err := s.serve(ctx, listener); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
	}
}

// Shutdown asks a running server to stop. It is safe to call more than once.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)
	})
}

func (s *server) serve(parent context.Context, listener net.Listener) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var workersDone sync.WaitGroup
	workersDone.Go(func() {
		s.workers.Run(ctx)
	})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case <-s.shutdownCh:
		s.logger.Info().Msg("shutdown requested")
	case runErr = <-serveErr:
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancelShutdown()

	errs := []error{runErr}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	workersDone.Wait()
	errs = append(errs, s.closeResourcesWith(shutdownCtx))

	s.logger.Info().Msg("server Shutdown gracefully")
	return errors.Join(errs...)
}

func (s *server) closeResources() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.closeResourcesWith(ctx); err != nil {
		s.logger.Err(err).Msg("failed to close resources")
	}
}

func (s *server) closeResourcesWith(ctx context.Context) error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("closing resources: %w", err))
		}
	}
	return errors.Join(errs...)
}
