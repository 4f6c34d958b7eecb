// Package http is the HTTP adapter of the daily motivation service: the
// Gin server, its router and the middleware chain.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
)

// Server wraps http.Server with Gin and provides graceful shutdown.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// New creates a new HTTP server with the provided configuration.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		engine:     engine,
		httpServer: httpServer,
		config:     cfg,
		logger:     logger,
	}
}

// Engine returns the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the server configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// Start binds the listener and serves in the background. A bind failure is
// delivered on the returned channel, which is closed once serving stops.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		errCh <- fmt.Errorf("http server listen: %w", err)
		close(errCh)

		return errCh
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("starting HTTP server",
		slog.String("addr", ln.Addr().String()),
		slog.Duration("read_timeout", s.config.ReadTimeout),
		slog.Duration("write_timeout", s.config.WriteTimeout),
	)

	go func() {
		defer close(errCh)

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	return errCh
}

// Shutdown gracefully stops the server, waiting for active connections to finish.
// The provided context controls the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.httpServer.Addr
}

// maxBodySize returns middleware that limits the request body size.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
