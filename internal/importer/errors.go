// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import "errors"

var (
	// ErrStartingImporter is returned when the importer executable cannot
	// be spawned (not found, not executable, ...).
	ErrStartingImporter = errors.New("error starting importer")

	// ErrImporterTimedOut is reported in [Result.Err] when the configured
	// timeout killed the importer.
	ErrImporterTimedOut = errors.New("importer timed out")
)
