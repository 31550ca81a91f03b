package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/domain/auth"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
	"github.com/FACorreiaa/population-dashboard/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *session.Registry
	tokens   *auth.TokenService
	router   http.Handler
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	// Fails fast on a bad base URL instead of on the first request.
	if _, err := newClient(cfg, logger); err != nil {
		return nil, fmt.Errorf("failed to configure remote client: %w", err)
	}

	factory := func() (*api.Client, error) { return newClient(cfg, logger) }
	registry := session.NewRegistry(factory, cfg.Session.TTL, cfg.API.Timeout, logger.Named("session"))

	return &Server{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		tokens:   auth.NewTokenService(cfg.Session.Secret, cfg.Session.TTL),
	}, nil
}

func newClient(cfg *config.Config, logger *zap.Logger) (*api.Client, error) {
	return api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger.Named("api"))
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

func (s *Server) Registry() *session.Registry {
	return s.registry
}

func (s *Server) Tokens() *auth.TokenService {
	return s.tokens
}

func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

func (s *Server) GetConfig() *config.Config {
	return s.cfg
}

// Close releases every session store.
func (s *Server) Close() {
	if s.registry != nil {
		s.registry.Close()
	}
}
