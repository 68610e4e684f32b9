// Package server serves the capabilities section over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"capsection/internal/config"
	"capsection/internal/manufacturing"
	"capsection/pkg/logging"

	"github.com/gorilla/mux"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	requestTimeout  = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Source provides the configuration for each request. config.Static and
// config.Watcher both satisfy it.
type Source interface {
	Config() config.CapsectionConfig
}

// Server is the HTTP front end for the section renderer.
type Server struct {
	router   *mux.Router
	server   *http.Server
	source   Source
	renderer *manufacturing.Renderer
	metrics  *Metrics
	addr     string
}

// Option configures a Server.
type Option func(*Server)

// WithRenderer replaces the default renderer, typically to pin the clock.
func WithRenderer(r *manufacturing.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// WithMetrics replaces the default metrics registry.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// New creates a server listening on cfg's host and port.
func New(cfg config.ServerConfig, source Source, opts ...Option) *Server {
	s := &Server{
		router: mux.NewRouter(),
		source: source,
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = manufacturing.NewRenderer()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.timeoutMiddleware)

	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/section", s.handleSection).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/api/capabilities", s.handleCapabilities).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logging.Info("Server", "Serving capabilities section on http://%s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logging.Info("Server", "Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
