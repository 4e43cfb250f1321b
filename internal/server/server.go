// Package server provides the HTTP API for candidate analysis.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/langhire/internal/scoring"
	"github.com/jonathan/langhire/internal/server/ratelimit"
)

// Config holds server configuration.
type Config struct {
	Port       int
	APIKey     string // optional; empty disables authentication
	Thresholds scoring.Thresholds
}

// Server is the HTTP front end. It holds no per-request state; analysis
// results are returned to the caller and never persisted.
type Server struct {
	httpServer  *http.Server
	engine      *scoring.Engine
	apiKey      string
	rateLimiter *ratelimit.Limiter
	logger      *zap.Logger
}

// New creates a server instance.
func New(cfg Config, logger *zap.Logger) *Server {
	s := &Server{
		engine:      scoring.NewEngine(cfg.Thresholds),
		apiKey:      cfg.APIKey,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestLog(s.withRateLimit(s.withAPIKey(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the fully wrapped handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}
