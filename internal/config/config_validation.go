// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] has everything
// the server needs before it starts accepting imports.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Storage.LeaksDB.Path == "" {
		return fmt.Errorf("%w: leaks database path is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Uploads.Dir == "" || cfg.Storage.Uploads.MaxMemory <= 0 {
		return fmt.Errorf("%w: uploads dir and max memory are required", ErrInvalidStorageConfigs)
	}

	if cfg.Importer.Executable == "" {
		return fmt.Errorf("%w: importer executable is required", ErrInvalidImporterConfigs)
	}

	if cfg.Importer.NotifyURL == "" {
		return fmt.Errorf("%w: notify url is required", ErrInvalidImporterConfigs)
	}

	if cfg.Importer.Timeout < 0 {
		return fmt.Errorf("%w: negative importer timeout", ErrInvalidImporterConfigs)
	}

	if cfg.Workers.UploadSweepInterval < 0 || cfg.Workers.UploadTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
