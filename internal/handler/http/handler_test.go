package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/service"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Uploads{MaxMemory: 42}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, int64(42), h.maxMemory)
	assert.Equal(t, log, h.logger)
}
