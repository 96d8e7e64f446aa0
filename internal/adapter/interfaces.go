// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the import bridge.
//
// [ServerAdapter] submits leak forms exactly like the browser form does:
// multipart/form-data with context, shareDateMS, comma-joined platforms and
// leakers, and the raw leakFile. HTTP statuses are mapped onto the sentinel
// errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/palavrapasse/import-web-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running import bridge.
type ServerAdapter interface {
	// SubmitLeak posts form to the bridge, waits for the import to finish
	// and returns the reported growth of the leaks database in bytes.
	SubmitLeak(ctx context.Context, form models.LeakForm) (int64, error)

	// Health returns the bridge's health report. A non-nil error is also
	// returned when the bridge reports itself unhealthy.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the bridge's build version.
	Version(ctx context.Context) (string, error)
}
