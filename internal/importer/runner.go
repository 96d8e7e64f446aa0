// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/models"
)

type processRunner struct {
	executable   string
	databasePath string
	notifyURL    string
	timeout      time.Duration

	// env overrides the child environment when non-nil.
	env []string

	logger *logger.Logger
}

// NewRunner returns a [Runner] that executes cfg.Executable against the
// leaks database at databasePath.
func NewRunner(cfg config.Importer, databasePath string, log *logger.Logger) Runner {
	return &processRunner{
		executable:   cfg.Executable,
		databasePath: databasePath,
		notifyURL:    cfg.NotifyURL,
		timeout:      cfg.Timeout,
		logger:       log,
	}
}

// Start implements [Runner].
//
// The process is detached from ctx cancellation: a client that goes away
// does not abort an import that has already begun. Only the configured
// timeout, if any, can stop it.
func (p *processRunner) Start(ctx context.Context, req models.ImportRequest) (<-chan Result, error) {
	args := BuildArgs(p.databasePath, p.notifyURL, req)

	runCtx := context.WithoutCancel(ctx)
	cancel := context.CancelFunc(func() {})
	if p.timeout > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, p.timeout)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, p.executable, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = p.env
	if p.timeout > 0 {
		cmd.WaitDelay = time.Second
	}

	log := logger.FromContext(ctx)
	log.Info().Str("executable", p.executable).Strs("args", args).Msg("starting importer")

	started := time.Now()
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %w", ErrStartingImporter, err)
	}

	done := make(chan Result, 1)
	go func() {
		defer close(done)
		defer cancel()

		err := cmd.Wait()
		res := Result{
			Args:     args,
			ExitCode: cmd.ProcessState.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Duration: time.Since(started),
		}

		var exitErr *exec.ExitError
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			res.Err = fmt.Errorf("%w after %s", ErrImporterTimedOut, p.timeout)
		case err != nil && !errors.As(err, &exitErr):
			res.Err = err
		}

		p.logger.Debug().
			Int("pid", cmd.ProcessState.Pid()).
			Int("exit_code", res.ExitCode).
			Dur("duration", res.Duration).
			Msg("importer process exited")

		done <- res
	}()

	return done, nil
}
