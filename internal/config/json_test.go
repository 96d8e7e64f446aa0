package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := t.TempDir() + "/config.json"
	content := `{
		"server": {"host": "127.0.0.1", "port": 8000, "request_timeout": "20s"},
		"storage": {
			"leaks_db": {"path": "/json/leaks.sqlite"},
			"uploads": {"dir": "/json/uploads", "max_memory": 2048}
		},
		"importer": {
			"executable": "/bin/import",
			"notify_url": "http://json/notify",
			"timeout": "3m",
			"serialize": true,
			"fail_on_exit_code": true
		},
		"workers": {"upload_sweep_interval": "30m", "upload_ttl": "12h"},
		"adapter": {"http_address": "http://json:55545", "request_timeout": 60000000000}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/json/leaks.sqlite", cfg.Storage.LeaksDB.Path)
	assert.Equal(t, "/json/uploads", cfg.Storage.Uploads.Dir)
	assert.Equal(t, int64(2048), cfg.Storage.Uploads.MaxMemory)
	assert.Equal(t, "/bin/import", cfg.Importer.Executable)
	assert.Equal(t, "http://json/notify", cfg.Importer.NotifyURL)
	assert.Equal(t, 3*time.Minute, cfg.Importer.Timeout)
	assert.True(t, cfg.Importer.Serialize)
	assert.True(t, cfg.Importer.FailOnExitCode)
	assert.Equal(t, 30*time.Minute, cfg.Workers.UploadSweepInterval)
	assert.Equal(t, 12*time.Hour, cfg.Workers.UploadTTL)
	assert.Equal(t, "http://json:55545", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := t.TempDir() + "/config.json"
	require.NoError(t, os.WriteFile(path, []byte(`{"importer": {"timeout": "soon"}}`), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
