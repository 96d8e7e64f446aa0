// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMultipartParse is returned when the request body is not a
	// readable multipart form. The parser's own error is wrapped.
	ErrMultipartParse = errors.New("error parsing multipart form")

	// ErrOpeningUpload is returned when the uploaded leak file cannot be
	// read back from the parsed form.
	ErrOpeningUpload = errors.New("error opening uploaded leak file")
)
