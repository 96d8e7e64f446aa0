package store

import (
	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
)

// Storages aggregates the storage backends used by the services.
type Storages struct {
	LeaksDatabase LeaksDatabase
	UploadStorage UploadStorage
}

// NewStorages builds every storage backend from cfg.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	leaksDB, err := NewLeaksDatabase(cfg.LeaksDB, log)
	if err != nil {
		return nil, err
	}

	uploads, err := NewUploadStorage(cfg.Uploads, log)
	if err != nil {
		leaksDB.Close()
		return nil, err
	}

	return &Storages{
		LeaksDatabase: leaksDB,
		UploadStorage: uploads,
	}, nil
}

// Close releases resources held by the storages.
func (s *Storages) Close() error {
	return s.LeaksDatabase.Close()
}
