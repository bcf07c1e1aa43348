package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/learntech/courseplanner/internal/config"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// Server holds the state for the HTTP server.
type Server struct {
	config  *config.Config
	http    *http.Server
	onClose func()
}

// NewServer creates a server for handler. onClose runs after the HTTP server
// has drained, to release the database pool and other resources.
func NewServer(cfg *config.Config, handler http.Handler, onClose func()) *Server {
	return &Server{
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       120 * time.Second,
		},
		onClose: onClose,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.close()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		logger.Info().Msg("Shutdown requested, draining requests...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := s.http.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
		shutdownErr = fmt.Errorf("server shutdown: %w", err)
	} else {
		logger.Info().Msg("HTTP server gracefully stopped.")
	}

	s.close()
	logger.Info().Msg("Server shutdown process complete.")
	return shutdownErr
}

func (s *Server) close() {
	if s.onClose != nil {
		s.onClose()
		s.onClose = nil
	}
}
