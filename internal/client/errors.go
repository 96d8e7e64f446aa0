package client

import "errors"

var (
	ErrMissingLeakFile  = errors.New("-file is required")
	ErrInvalidShareDate = errors.New("-share-date must be formatted as YYYY-MM-DD")
	ErrBridgeUnhealthy  = errors.New("bridge is not healthy")
)
