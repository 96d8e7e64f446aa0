// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DateFormatLayout is the calendar-day layout the importer expects for
// its --share-date flag.
const DateFormatLayout = "2006-01-02"

// ImportRequest is a fully validated leak submission. It is built per HTTP
// request from the multipart form and discarded once the response is sent.
//
// A value is only meaningful when every field was derived successfully;
// partially built requests must never reach the import service.
type ImportRequest struct {
	// Context is a free-text description of the leak, trimmed and non-empty.
	Context string `json:"context"`

	// ShareDate is the day the leak was shared, truncated to midnight UTC.
	ShareDate time.Time `json:"share_date"`

	// Platforms affected by the leak. Empty tokens are dropped, duplicates kept.
	Platforms []string `json:"platforms"`

	// Leakers (bad actors) responsible for the leak. Same rules as Platforms.
	Leakers []string `json:"leakers"`

	// LeakFile is the path of the uploaded file after it was persisted by
	// the intake layer. It is not the client-side filename.
	LeakFile string `json:"leak_file"`
}

// ShareDay returns ShareDate rendered as YYYY-MM-DD.
func (r ImportRequest) ShareDay() string {
	return r.ShareDate.Format(DateFormatLayout)
}

// JoinedPlatforms returns Platforms joined with commas.
func (r ImportRequest) JoinedPlatforms() string {
	return strings.Join(r.Platforms, ",")
}

// JoinedLeakers returns Leakers joined with commas.
func (r ImportRequest) JoinedLeakers() string {
	return strings.Join(r.Leakers, ",")
}
