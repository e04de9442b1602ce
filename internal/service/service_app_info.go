package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const unknownBuildValue = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService resolves the version reported by the server. A version
// injected at build time wins over the configured one; the configured
// version is only the fallback for untagged builds.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if buildVersion := strings.TrimSpace(build.Version); buildVersion != "" && buildVersion != unknownBuildValue {
		version = buildVersion
	}

	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("commit", build.Commit).
		Str("build_date", build.Date).
		Str("timezone", cfg.Location().String()).
		Msg("application info resolved")

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
