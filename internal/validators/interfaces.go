// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw leak submissions into validated
// [models.ImportRequest] values and enforces the rules an import request
// must satisfy before the importer is started.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ParseForm / LeakFile: derivation of request fields from multipart
//     form values and file headers.
//
// Every error produced here wraps [ErrFieldValidation].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
