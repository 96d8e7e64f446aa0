// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/importer"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/store"
	"github.com/palavrapasse/import-web-api/models"
)

// databaseLocks holds one *sync.Mutex per leaks database path.
var databaseLocks sync.Map

type importService struct {
	leaksDatabase store.LeaksDatabase
	runner        importer.Runner

	serialize      bool
	failOnExitCode bool

	logger *logger.Logger
}

func NewImportService(leaksDatabase store.LeaksDatabase, runner importer.Runner, cfg config.Importer, logger *logger.Logger) ImportService {
	return &importService{
		leaksDatabase:  leaksDatabase,
		runner:         runner,
		serialize:      cfg.Serialize,
		failOnExitCode: cfg.FailOnExitCode,
		logger:         logger,
	}
}

// Import implements [ImportService].
//
// Without serialization two imports against the same database overlap and
// each one sees the other's growth in its delta.
func (s *importService) Import(ctx context.Context, req models.ImportRequest) (models.ImportOutcome, error) {
	if s.serialize {
		unlock := lockDatabase(s.leaksDatabase.Path())
		defer unlock()
	}

	log := logger.FromContext(ctx)

	before, err := s.leaksDatabase.Size(ctx)
	if err != nil {
		return models.ImportOutcome{}, fmt.Errorf("%w before import: %w", ErrMeasurement, err)
	}

	done, err := s.runner.Start(ctx, req)
	if err != nil {
		return models.ImportOutcome{}, fmt.Errorf("%w: %w", ErrProcessInvocation, err)
	}
	res := <-done

	log.Info().
		Int("exit_code", res.ExitCode).
		Dur("duration", res.Duration).
		Str("stdout", res.Stdout).
		Str("stderr", res.Stderr).
		Msg("importer finished")

	if res.Err != nil {
		return models.ImportOutcome{}, fmt.Errorf("%w: %w", ErrProcessInvocation, res.Err)
	}
	if res.ExitCode != 0 {
		if s.failOnExitCode {
			return models.ImportOutcome{}, fmt.Errorf("%w: exit code %d", ErrImporterFailed, res.ExitCode)
		}
		log.Warn().Int("exit_code", res.ExitCode).Msg("importer exited with non-zero status")
	}

	after, err := s.leaksDatabase.Size(ctx)
	if err != nil {
		return models.ImportOutcome{}, fmt.Errorf("%w after import: %w", ErrMeasurement, err)
	}

	return models.ImportOutcome{
		SizeBefore: before,
		SizeAfter:  after,
		Delta:      after - before,
		ExitCode:   res.ExitCode,
		Stdout:     res.Stdout,
		Stderr:     res.Stderr,
		Duration:   res.Duration,
	}, nil
}

func lockDatabase(path string) func() {
	v, _ := databaseLocks.LoadOrStore(path, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
