// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the import
// bridge. It is populated once at startup by merging a .env file,
// environment variables, command-line flags and an optional JSON file, and
// is passed by value into the components that need it afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the bind address of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the leaks database location and the upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Importer holds everything needed to launch the external importer.
	Importer Importer `envPrefix:"IMPORTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the settings used by the form-submission client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server binds to.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds how long the server waits for request headers.
	// Zero disables the limit. Imports themselves are never cut short by it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Address returns Host and Port joined as "host:port".
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Storage groups the file-system locations used by the bridge.
type Storage struct {
	// LeaksDB points at the SQLite database the importer writes into.
	LeaksDB LeaksDB `envPrefix:"LEAKS_DB_"`

	// Uploads controls where uploaded leak files are written.
	Uploads Uploads `envPrefix:"UPLOADS_"`
}

// LeaksDB holds the location of the leaks database file.
type LeaksDB struct {
	// Path of the SQLite file. Its size is measured around every import.
	// Env: STORAGE_LEAKS_DB_PATH
	Path string `env:"PATH"`
}

// Uploads holds settings for persisting multipart uploads.
type Uploads struct {
	// Dir is the directory uploaded leak files are copied into.
	// Defaults to the OS temp directory.
	// Env: STORAGE_UPLOADS_DIR
	Dir string `env:"DIR"`

	// MaxMemory is the number of bytes of a multipart body kept in memory
	// before the rest spills to disk while parsing.
	// Env: STORAGE_UPLOADS_MAX_MEMORY
	MaxMemory int64 `env:"MAX_MEMORY"`
}

// Importer holds the settings for invoking the external import executable.
type Importer struct {
	// Executable is the name or path of the importer binary.
	// Env: IMPORTER_EXECUTABLE
	Executable string `env:"EXECUTABLE"`

	// NotifyURL is forwarded to the importer as --notify-url.
	// Env: IMPORTER_NOTIFY_URL
	NotifyURL string `env:"NOTIFY_URL"`

	// Timeout kills the importer after the given duration. Zero waits forever.
	// Env: IMPORTER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Serialize runs at most one trigger-and-measure sequence at a time per
	// leaks database, so concurrent requests get accurate deltas.
	// Env: IMPORTER_SERIALIZE
	Serialize bool `env:"SERIALIZE"`

	// FailOnExitCode turns a non-zero importer exit into a request error.
	// By default the exit code is only logged.
	// Env: IMPORTER_FAIL_ON_EXIT_CODE
	FailOnExitCode bool `env:"FAIL_ON_EXIT_CODE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// UploadSweepInterval is how often stale uploads are removed.
	// Zero disables the sweeper.
	// Env: WORKERS_UPLOAD_SWEEP_INTERVAL
	UploadSweepInterval time.Duration `env:"UPLOAD_SWEEP_INTERVAL"`

	// UploadTTL is the age after which an upload is considered stale.
	// Env: WORKERS_UPLOAD_TTL
	UploadTTL time.Duration `env:"UPLOAD_TTL"`
}

// Adapter holds settings for the client that submits leak forms to a
// running bridge.
type Adapter struct {
	// HTTPAddress is the base URL of the bridge (e.g. "http://0.0.0.0:55545").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a whole submission, including the import.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// win for non-zero fields):
//  1. .env file (only fills variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to fields that are still zero afterwards.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
