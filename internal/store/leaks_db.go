// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
)

type leaksDatabase struct {
	path string
	db   *sql.DB

	logger *logger.Logger
}

// NewLeaksDatabase opens the leaks SQLite file in read-only mode.
//
// No connection is made until the first Ping, so a database the importer has
// not created yet does not prevent startup.
func NewLeaksDatabase(cfg config.LeaksDB, log *logger.Logger) (LeaksDatabase, error) {
	conn, err := sql.Open("sqlite3", readOnlyDSN(cfg.Path))
	if err != nil {
		log.Err(err).Str("func", "NewLeaksDatabase").Msg("error opening leaks database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	return newLeaksDatabase(cfg.Path, conn, log), nil
}

func newLeaksDatabase(path string, db *sql.DB, log *logger.Logger) *leaksDatabase {
	return &leaksDatabase{
		path:   path,
		db:     db,
		logger: log,
	}
}

// readOnlyDSN builds a SQLite URI that never creates or writes the file.
// Path segments are percent-encoded so '?', '#' and '%' stay part of the
// file name.
func readOnlyDSN(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	u := url.URL{Scheme: "file", Opaque: strings.Join(segments, "/")}
	q := url.Values{}
	q.Set("mode", "ro")
	u.RawQuery = q.Encode()
	return u.String()
}

func (l *leaksDatabase) Path() string {
	return l.path
}

func (l *leaksDatabase) Size(ctx context.Context) (int64, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMeasuringDatabase, err)
	}

	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s is a directory", ErrMeasuringDatabase, l.path)
	}

	return info.Size(), nil
}

func (l *leaksDatabase) Ping(ctx context.Context) error {
	if err := l.db.PingContext(ctx); err != nil {
		l.logger.Err(err).Str("func", "*leaksDatabase.Ping").Msg("leaks database is unreachable")
		return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}

	return nil
}

func (l *leaksDatabase) Close() error {
	return l.db.Close()
}
