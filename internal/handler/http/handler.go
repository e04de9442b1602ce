package http

import (
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *Metrics

	uploadDir      string
	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        NewMetrics(),
		uploadDir:      cfg.Storage.Files.UploadDir,
		maxUploadSize:  cfg.Storage.Files.MaxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// Metrics returns the collectors the handler reports to.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}
