// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import "github.com/palavrapasse/import-web-api/models"

// Flag names understood by the importer executable.
const (
	FlagDatabasePath = "database-path"
	FlagLeakPath     = "leak-path"
	FlagContext      = "context"
	FlagPlatforms    = "platforms"
	FlagShareDate    = "share-date"
	FlagLeakers      = "leakers"
	FlagNotifyURL    = "notify-url"
	FlagSkip         = "skip"
)

// BuildArgs returns the importer argv (without the executable) for req.
//
// The order and spelling of the flags is a contract with the importer and
// must not change. Values are passed as separate argv entries, never through
// a shell, so they are not quoted.
func BuildArgs(databasePath, notifyURL string, req models.ImportRequest) []string {
	return []string{
		longFlag(FlagDatabasePath, databasePath),
		longFlag(FlagLeakPath, req.LeakFile),
		longFlag(FlagContext, req.Context),
		longFlag(FlagPlatforms, req.JoinedPlatforms()),
		longFlag(FlagShareDate, req.ShareDay()),
		longFlag(FlagLeakers, req.JoinedLeakers()),
		longFlag(FlagNotifyURL, notifyURL),
		longFlag(FlagSkip, "true"),
	}
}

func longFlag(name, value string) string {
	return "--" + name + "=" + value
}
