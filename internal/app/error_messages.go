// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// import bridge handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgMethodNotAllowed is returned for any method a route does not
	// register, including OPTIONS on "/".
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInvalidGzipBody is returned when a request claims gzip encoding
	// but its body is not a gzip stream.
	MsgInvalidGzipBody = "invalid gzip data"
)
