// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/palavrapasse/import-web-api/models"
)

// FormFlags keeps the leak submission flags registered on a caller-owned
// flag set.
type FormFlags struct {
	context   string
	shareDate string
	platforms string
	leakers   string
	file      string
}

// RegisterFormFlags registers the leak submission flags on fs.
//
// Flags:
//
//	-context    free-text description of the leak
//	-share-date day the leak was shared, YYYY-MM-DD (default: today, UTC)
//	-platforms  comma separated platforms
//	-leakers    comma separated leakers
//	-file       path of the leak file to upload
func RegisterFormFlags(fs *flag.FlagSet) *FormFlags {
	f := &FormFlags{}
	fs.StringVar(&f.context, "context", "", "Leak description")
	fs.StringVar(&f.shareDate, "share-date", "", "Day the leak was shared (YYYY-MM-DD)")
	fs.StringVar(&f.platforms, "platforms", "", "Comma separated platforms")
	fs.StringVar(&f.leakers, "leakers", "", "Comma separated leakers")
	fs.StringVar(&f.file, "file", "", "Leak file to upload")
	return f
}

// LeakForm opens the leak file and builds the form to submit. The caller
// must close the returned file.
func (f *FormFlags) LeakForm(now time.Time) (models.LeakForm, *os.File, error) {
	if f.file == "" {
		return models.LeakForm{}, nil, ErrMissingLeakFile
	}

	shareDate := now.UTC().Truncate(24 * time.Hour)
	if f.shareDate != "" {
		parsed, err := time.Parse(models.DateFormatLayout, f.shareDate)
		if err != nil {
			return models.LeakForm{}, nil, fmt.Errorf("%w: %w", ErrInvalidShareDate, err)
		}
		shareDate = parsed
	}

	file, err := os.Open(f.file)
	if err != nil {
		return models.LeakForm{}, nil, fmt.Errorf("open leak file: %w", err)
	}

	return models.LeakForm{
		Context:   f.context,
		ShareDate: shareDate,
		Platforms: splitFlagList(f.platforms),
		Leakers:   splitFlagList(f.leakers),
		FileName:  filepath.Base(f.file),
		File:      file,
	}, file, nil
}

func splitFlagList(raw string) []string {
	var list []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			list = append(list, token)
		}
	}
	return list
}
