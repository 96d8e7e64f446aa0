package service

import (
	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/importer"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/store"
	"github.com/palavrapasse/import-web-api/models"
)

type Services struct {
	ImportService  ImportService
	UploadService  UploadService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	runner := importer.NewRunner(cfg.Importer, storages.LeaksDatabase.Path(), logger)

	return &Services{
		ImportService:  NewImportValidationService().Wrap(NewImportService(storages.LeaksDatabase, runner, cfg.Importer, logger)),
		UploadService:  NewUploadService(storages.UploadStorage, logger),
		HealthService:  NewHealthService(storages.LeaksDatabase, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
