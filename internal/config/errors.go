package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable bind address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing leaks database path or
	// unusable upload settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidImporterConfigs indicates the importer cannot be launched
	// with the given settings (for example, missing notify URL).
	ErrInvalidImporterConfigs = errors.New("invalid importer configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, non-positive upload TTL).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
