package service

import "errors"

var (
	// ErrMeasurement is returned when the leaks database size cannot be
	// read before or after an import.
	ErrMeasurement = errors.New("error measuring leaks database")

	// ErrProcessInvocation is returned when the importer could not be
	// started or did not finish on its own.
	ErrProcessInvocation = errors.New("error invoking importer")

	// ErrImporterFailed is returned for a non-zero importer exit when the
	// service is configured to treat it as a failure.
	ErrImporterFailed = errors.New("importer exited with non-zero status")

	ErrInvalidImportRequest = errors.New("invalid import request")

	ErrUnhealthy = errors.New("leaks database is unreachable")
)
