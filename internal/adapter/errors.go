package adapter

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedResponse is returned when a 200 response body cannot be
	// read as a byte delta.
	ErrUnexpectedResponse = errors.New("unexpected response body")

	ErrNoLeakFile = errors.New("leak form has no file")
)
