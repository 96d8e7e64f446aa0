// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/service"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (m *countingWorker) Run(context.Context) {
	m.runCount++
}

// orderWorker appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func TestWorkers_Run_AllWorkersAreCalledInOrder(t *testing.T) {
	var order []int
	ws := &Workers{workers: []Worker{
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	}}

	ws.Run(context.Background())

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { (&Workers{}).Run(context.Background()) })
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &countingWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run(context.Background())
	ws.Run(context.Background())

	assert.Equal(t, 2, w.runCount)
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{UploadService: &fakeUploadService{}}

	disabled := NewWorkers(services, config.Workers{UploadTTL: time.Hour}, logger.Nop())
	assert.Empty(t, disabled.workers)

	enabled := NewWorkers(services, config.Workers{UploadSweepInterval: time.Minute, UploadTTL: time.Hour}, logger.Nop())
	if assert.Len(t, enabled.workers, 1) {
		assert.IsType(t, &UploadSweeper{}, enabled.workers[0])
	}
}
