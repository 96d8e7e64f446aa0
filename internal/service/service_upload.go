package service

import (
	"context"
	"io"
	"time"

	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/store"
	"github.com/palavrapasse/import-web-api/models"
)

type uploadService struct {
	uploadStorage store.UploadStorage

	logger *logger.Logger
}

func NewUploadService(uploadStorage store.UploadStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		uploadStorage: uploadStorage,
		logger:        logger,
	}
}

func (s *uploadService) Store(ctx context.Context, name string, r io.Reader) (models.StoredUpload, error) {
	upload, err := s.uploadStorage.Save(ctx, name, r)
	if err != nil {
		return models.StoredUpload{}, err
	}

	logger.FromContext(ctx).Info().
		Str("original_name", upload.OriginalName).
		Str("path", upload.Path).
		Int64("size", upload.Size).
		Str("blake2b", upload.Digest).
		Msg("leak file stored")

	return upload, nil
}

func (s *uploadService) Discard(ctx context.Context, upload models.StoredUpload) error {
	if err := s.uploadStorage.Remove(ctx, upload.Path); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Str("path", upload.Path).Msg("leak file removed")
	return nil
}

func (s *uploadService) Sweep(ctx context.Context, ttl time.Duration) (int, error) {
	return s.uploadStorage.SweepOlderThan(ctx, ttl)
}
