package service

import (
	"context"
	"io"
	"time"

	"github.com/palavrapasse/import-web-api/models"
)

// ImportService runs one trigger-and-measure sequence per request.
type ImportService interface {
	// Import measures the leaks database, runs the importer for req, waits
	// for it to exit and measures again. The outcome's Delta is the signed
	// size difference.
	Import(ctx context.Context, req models.ImportRequest) (models.ImportOutcome, error)
}

// HealthService reports whether the bridge can serve imports.
type HealthService interface {
	Check(ctx context.Context) error
}

// UploadService keeps uploaded leak files on disk for the importer.
type UploadService interface {
	Store(ctx context.Context, name string, r io.Reader) (models.StoredUpload, error)

	// Discard deletes an upload once the importer no longer needs it.
	Discard(ctx context.Context, upload models.StoredUpload) error

	// Sweep deletes stored uploads older than ttl and returns how many
	// were removed.
	Sweep(ctx context.Context, ttl time.Duration) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ImportServiceWrapper defines middleware composition for ImportService.
// Implementations wrap an existing ImportService to add behavior such as
// validation.
type ImportServiceWrapper interface {
	Wrap(ImportService) ImportService // returns a decorated ImportService applying additional behavior
}
