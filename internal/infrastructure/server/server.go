package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kindredapp/kindred-backend/internal/config"
)

const shutdownGrace = 10 * time.Second

// Server wraps the standard http.Server with lifecycle helpers.
type Server struct {
	httpServer *http.Server
	addr       string
}

func NewServer(cfg *config.ServerConfig, router *gin.Engine) *Server {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return &Server{
		httpServer: &http.Server{
			Addr:           addr,
			Handler:        router,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    time.Minute,
			MaxHeaderBytes: 1 << 20,
		},
		addr: addr,
	}
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	fmt.Printf("Listening on %s\n", s.addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests before closing the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	fmt.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}
