package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/diet-recipe/backend/config"
	"github.com/pageza/diet-recipe/backend/internal/router"
	"github.com/pageza/diet-recipe/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New creates a new server instance. A nil generator falls back to the
// upstream LLM service described by cfg.
func New(cfg *config.Config, generator service.RecipeGenerator) *Server {
	if generator == nil {
		generator = service.NewLLMService(cfg)
	}

	engine := router.SetupRouter(cfg, generator)

	return &Server{
		router: engine,
		cfg:    cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			// Upstream calls may take the full LLM timeout.
			WriteTimeout: cfg.LLMTimeout + 15*time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until ctx is cancelled or the listener fails, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", s.http.Addr, "env", s.cfg.Env)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
