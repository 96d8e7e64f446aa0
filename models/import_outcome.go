package models

import "time"

// ImportOutcome is the measured effect of a single importer run.
// It is never persisted.
type ImportOutcome struct {
	// SizeBefore is the leaks database size in bytes before the importer ran.
	SizeBefore int64 `json:"size_before"`

	// SizeAfter is the leaks database size in bytes after the importer exited.
	SizeAfter int64 `json:"size_after"`

	// Delta is SizeAfter - SizeBefore. It can be zero or negative.
	Delta int64 `json:"delta"`

	// ExitCode of the importer process, -1 if it was killed by a signal.
	ExitCode int `json:"exit_code"`

	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	Duration time.Duration `json:"duration"`
}
