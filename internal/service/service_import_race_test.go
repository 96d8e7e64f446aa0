// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/importer"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/models"
)

// fakeLeaksDatabase is an in-memory database whose size the fake runner grows.
type fakeLeaksDatabase struct {
	path string
	size atomic.Int64
}

func (f *fakeLeaksDatabase) Path() string { return f.path }
func (f *fakeLeaksDatabase) Size(ctx context.Context) (int64, error) { return f.size.Load(), nil }
func (f *fakeLeaksDatabase) Ping(ctx context.Context) error { return nil }
func (f *fakeLeaksDatabase) Close() error { return nil }

// growingRunner adds grow bytes to db per import. When overlap is set, each
// import waits until all of them have started and then until all of them
// have grown the database, forcing the snapshots to interleave.
type growingRunner struct {
	db      *fakeLeaksDatabase
	grow    int64
	overlap bool

	started sync.WaitGroup
	grown   sync.WaitGroup
}

func newGrowingRunner(db *fakeLeaksDatabase, grow int64, imports int, overlap bool) *growingRunner {
	r := &growingRunner{db: db, grow: grow, overlap: overlap}
	if overlap {
		r.started.Add(imports)
		r.grown.Add(imports)
	}
	return r
}

func (r *growingRunner) Start(ctx context.Context, req models.ImportRequest) (<-chan importer.Result, error) {
	done := make(chan importer.Result, 1)
	go func() {
		defer close(done)
		if r.overlap {
			r.started.Done()
			r.started.Wait()
		}
		r.db.size.Add(r.grow)
		if r.overlap {
			r.grown.Done()
			r.grown.Wait()
		}
		done <- importer.Result{}
	}()
	return done, nil
}

func runConcurrentImports(t *testing.T, svc ImportService, n int) []int64 {
	t.Helper()

	deltas := make([]int64, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := svc.Import(context.Background(), testImportRequest())
			deltas[i], errs[i] = outcome.Delta, err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	return deltas
}

// Overlapping imports against one database attribute each other's growth to
// themselves. This pins the default, unserialized behavior.
func TestImport_Concurrent_Unserialized_DeltasOverlap(t *testing.T) {
	db := &fakeLeaksDatabase{path: t.Name()}
	db.size.Store(1000)

	svc := NewImportService(db, newGrowingRunner(db, 100, 2, true), config.Importer{}, logger.Nop())

	deltas := runConcurrentImports(t, svc, 2)

	assert.Equal(t, []int64{200, 200}, deltas)
	assert.Equal(t, int64(1200), db.size.Load())
}

func TestImport_Concurrent_Serialized_DeltasExact(t *testing.T) {
	db := &fakeLeaksDatabase{path: t.Name()}
	db.size.Store(1000)

	svc := NewImportService(db, newGrowingRunner(db, 100, 4, false), config.Importer{Serialize: true}, logger.Nop())

	deltas := runConcurrentImports(t, svc, 4)

	assert.Equal(t, []int64{100, 100, 100, 100}, deltas)
	assert.Equal(t, int64(1400), db.size.Load())
}

func TestLockDatabase_PerPath(t *testing.T) {
	unlockA := lockDatabase(t.Name() + "/a")
	defer unlockA()

	acquired := make(chan struct{})
	go func() {
		unlockB := lockDatabase(t.Name() + "/b")
		unlockB()
		close(acquired)
	}()

	<-acquired
}
