package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/handler"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	background BackgroundRunner
	logger     *logger.Logger
}

// NewServer builds the HTTP server around the handlers' router. background
// may be nil when no workers are configured.
func NewServer(handlers *handler.Handlers, background BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is cancelled, then shuts the HTTP server down and
// waits for the background jobs to stop.
func (s *server) run(ctx context.Context) {
	backgroundDone := make(chan struct{})
	go func() {
		defer close(backgroundDone)
		if s.background != nil {
			s.background.Run(ctx)
		}
	}()

	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		s.logger.Info().Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	<-ctx.Done()
	s.logger.Info().Msg("shutdown requested")

	s.Shutdown()
	<-serverDone
	<-backgroundDone

	s.logger.Info().Msg("server Shutdown gracefully")
}
