// Package server serves the langgpt HTTP API and the embedded browser UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/josephgoksu/langgpt-assistant/internal/config"
	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/web"
)

// Option configures a Server.
type Option func(*Server)

// WithMetrics shares m with the caller, typically so the same Metrics can
// observe the service passed to New.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithStatic replaces the embedded UI files.
func WithStatic(fsys fs.FS) Option {
	return func(s *Server) { s.static = fsys }
}

// WithClock overrides time.Now for health timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithMCP mounts an MCP streamable HTTP handler on /mcp and reports it as
// connected on /api/health.
func WithMCP(h http.Handler) Option {
	return func(s *Server) { s.mcp = h }
}

type Server struct {
	svc      *langgpt.Service
	log      *slog.Logger
	metrics  *Metrics
	mcp      http.Handler
	static   fs.FS
	origins  map[string]struct{}
	now      func() time.Time
	shutdown time.Duration
	server   *http.Server
}

func New(cfg config.ServerConfig, svc *langgpt.Service, log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		svc:      svc,
		log:      log,
		origins:  make(map[string]struct{}, len(cfg.CORSOrigins)),
		now:      time.Now,
		shutdown: cfg.ShutdownTimeout,
	}
	for _, o := range cfg.CORSOrigins {
		s.origins[o] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.static == nil {
		s.static = web.Static()
	}
	if s.shutdown <= 0 {
		s.shutdown = config.DefaultShutdownTimeout
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.registerRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
	return s
}

// Handler returns the full handler, middleware included.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", ln.Addr().String())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down", "timeout", s.shutdown)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errChan
}
