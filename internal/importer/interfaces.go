// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"time"

	"github.com/palavrapasse/import-web-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/importer_mock.go -package=mock

// Runner starts importer processes.
type Runner interface {
	// Start launches the importer for req and returns immediately.
	// The returned channel delivers exactly one Result once the process has
	// exited and is then closed. An error is returned only when the process
	// could not be started at all.
	Start(ctx context.Context, req models.ImportRequest) (<-chan Result, error)
}

// Result describes a finished importer process.
type Result struct {
	// Args is the argv the importer was started with, executable excluded.
	Args []string

	// ExitCode is the process exit status, -1 when it was killed by a signal.
	ExitCode int

	Stdout   string
	Stderr   string
	Duration time.Duration

	// Err is set when waiting for the process failed for a reason other
	// than a non-zero exit, for example when the timeout killed it.
	Err error
}
