package service

import (
	"context"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/logger"
)

// appInfoService reports the fortnote-server release, which cmd/server
// takes from its -ldflags build version when one is set.
type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] reporting cfg.Version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "appInfoService.GetAppVersion").Str("version", s.version).Msg("version requested")
	return s.version
}
