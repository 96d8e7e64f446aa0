// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/models"
)

// uploadFilePrefix marks files created by the bridge so the sweeper never
// touches anything else living in a shared temp directory.
const uploadFilePrefix = "leak-"

type fileUploadStorage struct {
	dir string
	now func() time.Time

	logger *logger.Logger
}

// NewUploadStorage returns an [UploadStorage] writing into cfg.Dir.
// The directory is created when missing.
func NewUploadStorage(cfg config.Uploads, log *logger.Logger) (UploadStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	return &fileUploadStorage{
		dir:    cfg.Dir,
		now:    time.Now,
		logger: log,
	}, nil
}

func (s *fileUploadStorage) Save(ctx context.Context, name string, r io.Reader) (models.StoredUpload, error) {
	f, err := os.CreateTemp(s.dir, uploadFilePrefix+"*"+safeExt(name))
	if err != nil {
		return models.StoredUpload{}, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	hasher, err := blake2b.New256(nil)
	if err != nil {
		s.discard(f)
		return models.StoredUpload{}, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	size, err := io.Copy(io.MultiWriter(f, hasher), r)
	if err != nil {
		s.discard(f)
		return models.StoredUpload{}, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return models.StoredUpload{}, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	return models.StoredUpload{
		Path:         f.Name(),
		OriginalName: name,
		Size:         size,
		Digest:       hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

func (s *fileUploadStorage) Remove(ctx context.Context, path string) error {
	if filepath.Dir(path) != filepath.Clean(s.dir) || !strings.HasPrefix(filepath.Base(path), uploadFilePrefix) {
		return fmt.Errorf("%w: %s is not a stored upload", ErrRemovingUpload, path)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRemovingUpload, err)
	}

	return nil
}

func (s *fileUploadStorage) SweepOlderThan(ctx context.Context, ttl time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSweepingUploads, err)
	}

	deadline := s.now().Add(-ttl)
	removed := 0
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		if entry.IsDir() || !strings.HasPrefix(entry.Name(), uploadFilePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently
			continue
		}

		if !info.ModTime().Before(deadline) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err = os.Remove(path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("could not remove stale upload")
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *fileUploadStorage) discard(f *os.File) {
	f.Close()
	if err := os.Remove(f.Name()); err != nil {
		s.logger.Warn().Err(err).Str("path", f.Name()).Msg("could not remove partial upload")
	}
}

// safeExt returns the extension of the client filename if it is short and
// made of plain characters, otherwise an empty string.
func safeExt(name string) string {
	ext := filepath.Ext(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	if len(ext) > 16 {
		return ""
	}

	for _, r := range ext[min(1, len(ext)):] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}

	return ext
}
