package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	gwerrors "github.com/abdigaliarsen/api-gateway/internal/errors"
	"github.com/abdigaliarsen/api-gateway/internal/forwarder"
)

// Config holds server configuration
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":3000")
	ListenAddr string

	// Forwarder performs the outbound call for /api/proxy
	Forwarder *forwarder.Forwarder

	// Logger for access and error logs
	Logger *zap.Logger

	// Now is the clock used for /health timestamps
	Now func() time.Time
}

// Server is the HTTP surface of the gateway
type Server struct {
	forwarder *forwarder.Forwarder
	logger    *zap.Logger
	now       func() time.Time
	router    chi.Router
	server    *http.Server
}

// NewServer creates a new gateway server
func NewServer(cfg *Config) (*Server, error) {
	if cfg.Forwarder == nil {
		return nil, gwerrors.ConfigError("gateway server requires a forwarder", nil)
	}

	s := &Server{
		forwarder: cfg.Forwarder,
		logger:    cfg.Logger,
		now:       cfg.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.router = s.routes()
	s.server = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(recoverer(s.logger))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/api/proxy", s.handleProxy)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)
	return r
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. A graceful shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting gateway server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return gwerrors.ServerError("gateway server stopped", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
