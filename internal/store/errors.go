package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrMeasuringDatabase is returned when the size of the leaks database
	// file cannot be read (missing file, permissions, ...).
	ErrMeasuringDatabase = errors.New("error measuring leaks database")

	// ErrOpeningDatabase is returned when the SQLite driver rejects the
	// leaks database location.
	ErrOpeningDatabase = errors.New("error opening leaks database")

	// ErrPingingDatabase is returned when the leaks database cannot be
	// reached through the SQLite driver.
	ErrPingingDatabase = errors.New("error pinging leaks database")

	// ErrSavingUpload is returned when an uploaded file cannot be written
	// to the upload directory.
	ErrSavingUpload = errors.New("error saving uploaded file")

	// ErrSweepingUploads is returned when the upload directory cannot be
	// listed during a sweep.
	ErrSweepingUploads = errors.New("error sweeping uploaded files")

	// ErrRemovingUpload is returned when a stored upload cannot be deleted
	// or the path does not name a file created by the upload storage.
	ErrRemovingUpload = errors.New("error removing uploaded file")
)
