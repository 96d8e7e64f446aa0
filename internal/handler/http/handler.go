package http

import (
	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/service"
)

type Handler struct {
	services *service.Services

	// maxMemory bounds the part of a multipart form kept in memory; the
	// rest of the upload spills to temporary files.
	maxMemory int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Uploads, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		maxMemory: cfg.MaxMemory,
		logger:    logger,
	}
}
