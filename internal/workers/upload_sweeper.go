// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/service"
)

// UploadSweeper periodically deletes stored leak files older than ttl.
// Imports only need the file while the importer runs, so anything older
// than ttl is left over from finished or abandoned requests.
type UploadSweeper struct {
	uploads  service.UploadService
	interval time.Duration
	ttl      time.Duration

	// done is closed when the sweeping goroutine exits.
	done chan struct{}

	logger *logger.Logger
}

func NewUploadSweeper(uploads service.UploadService, interval, ttl time.Duration, logger *logger.Logger) *UploadSweeper {
	return &UploadSweeper{
		uploads:  uploads,
		interval: interval,
		ttl:      ttl,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run implements [Worker].
func (s *UploadSweeper) Run(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("ttl", s.ttl).
		Msg("upload sweeper started")

	go s.loop(ctx)
}

// Done is closed once the sweeper has stopped.
func (s *UploadSweeper) Done() <-chan struct{} {
	return s.done
}

func (s *UploadSweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("upload sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *UploadSweeper) sweep(ctx context.Context) {
	removed, err := s.uploads.Sweep(ctx, s.ttl)
	if err != nil {
		s.logger.Error().Err(err).Msg("upload sweep failed")
		return
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("stale uploads removed")
	}
}
