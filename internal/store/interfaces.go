package store

import (
	"context"
	"io"
	"time"

	"github.com/palavrapasse/import-web-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LeaksDatabase is the bridge's read-only view of the SQLite file the
// importer writes into. The bridge never changes its contents.
type LeaksDatabase interface {
	// Path returns the location of the database file.
	Path() string

	// Size returns the current size of the database file in bytes.
	Size(ctx context.Context) (int64, error)

	// Ping checks that the file can be opened as a SQLite database.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

// UploadStorage persists uploaded leak files so the importer can read them
// from disk.
type UploadStorage interface {
	// Save copies r into a new file in the upload directory. name is the
	// client-side filename and only contributes its extension.
	Save(ctx context.Context, name string, r io.Reader) (models.StoredUpload, error)

	// Remove deletes one stored upload. path must be a Path previously
	// returned by Save. A file that is already gone is not an error.
	Remove(ctx context.Context, path string) error

	// SweepOlderThan removes uploads whose modification time is older than
	// ttl and returns how many were removed.
	SweepOlderThan(ctx context.Context, ttl time.Duration) (int, error)
}
