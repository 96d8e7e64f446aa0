// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/palavrapasse/import-web-api/models"
)

const listSeparator = ","

// ParseForm derives an import request from multipart form values.
// LeakFile is left empty: the caller sets it once the upload is stored.
func ParseForm(values map[string][]string) (models.ImportRequest, error) {
	var req models.ImportRequest

	rawContext, err := formValue(values, models.FormFieldContext)
	if err != nil {
		return req, err
	}
	req.Context = strings.TrimSpace(rawContext)
	if req.Context == "" {
		return req, ErrEmptyContext
	}

	rawShareDate, err := formValue(values, models.FormFieldShareDateMS)
	if err != nil {
		return req, err
	}
	if req.ShareDate, err = ParseShareDate(rawShareDate); err != nil {
		return req, err
	}

	platforms, err := formValue(values, models.FormFieldPlatforms)
	if err != nil {
		return req, err
	}
	req.Platforms = SplitList(platforms)

	leakers, err := formValue(values, models.FormFieldLeakers)
	if err != nil {
		return req, err
	}
	req.Leakers = SplitList(leakers)

	return req, nil
}

// LeakFile returns the single file uploaded under the leakFile field.
func LeakFile(files map[string][]*multipart.FileHeader) (*multipart.FileHeader, error) {
	headers := files[models.FormFieldLeakFile]
	if len(headers) != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrMissingLeakFile, len(headers))
	}
	return headers[0], nil
}

// ParseShareDate converts a millisecond epoch timestamp into the UTC
// calendar day it falls on.
func ParseShareDate(raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w, got %q", ErrInvalidShareDate, raw)
	}
	return time.UnixMilli(ms).UTC().Truncate(24 * time.Hour), nil
}

// SplitList splits a comma separated value, dropping zero-length tokens.
// Order and duplicates are kept. The result is never nil.
func SplitList(raw string) []string {
	list := make([]string, 0)
	for _, token := range strings.Split(raw, listSeparator) {
		if token != "" {
			list = append(list, token)
		}
	}
	return list
}

func formValue(values map[string][]string, field string) (string, error) {
	v, ok := values[field]
	if !ok || len(v) == 0 {
		return "", fmt.Errorf("%w %q", ErrMissingField, field)
	}
	return v[0], nil
}
