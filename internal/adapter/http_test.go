// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func testLeakForm() models.LeakForm {
	return models.LeakForm{
		Context:   "leak A",
		ShareDate: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
		Platforms: []string{"tg", "discord"},
		Leakers:   []string{"x", "y"},
		FileName:  "dump.txt",
		File:      strings.NewReader("a@b.c:pw\n"),
	}
}

// ── SubmitLeak ──────────────────────────────────────────────────────────────

func TestSubmitLeak_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "leak A", r.FormValue("context"))
		assert.Equal(t, "1700000000000", r.FormValue("shareDateMS"))
		assert.Equal(t, "tg,discord", r.FormValue("platforms"))
		assert.Equal(t, "x,y", r.FormValue("leakers"))

		file, header, err := r.FormFile("leakFile")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "dump.txt", header.Filename)
		assert.Equal(t, "a@b.c:pw\n", string(data))

		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("512"))
	}))
	defer srv.Close()

	delta, err := newTestAdapter(t, srv.URL).SubmitLeak(context.Background(), testLeakForm())

	require.NoError(t, err)
	assert.Equal(t, int64(512), delta)
}

func TestSubmitLeak_NegativeDelta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("-20\n"))
	}))
	defer srv.Close()

	delta, err := newTestAdapter(t, srv.URL).SubmitLeak(context.Background(), testLeakForm())

	require.NoError(t, err)
	assert.Equal(t, int64(-20), delta)
}

func TestSubmitLeak_EmptyListsSentAsEmptyValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		_, ok := r.MultipartForm.Value["platforms"]
		assert.True(t, ok, "platforms must be present even when empty")
		assert.Equal(t, "", r.FormValue("platforms"))
		w.Write([]byte("0"))
	}))
	defer srv.Close()

	form := testLeakForm()
	form.Platforms = nil

	_, err := newTestAdapter(t, srv.URL).SubmitLeak(context.Background(), form)
	require.NoError(t, err)
}

func TestSubmitLeak_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"validation failure", http.StatusInternalServerError, "invalid leak form: context must not be empty", ErrInternalServerError},
		{"method not allowed", http.StatusMethodNotAllowed, "Method Not Allowed", ErrMethodNotAllowed},
		{"not found", http.StatusNotFound, "404 page not found", ErrNotFound},
		{"non numeric body", http.StatusOK, "done", ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).SubmitLeak(context.Background(), testLeakForm())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitLeak_InternalServerError_KeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error measuring leaks database", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SubmitLeak(context.Background(), testLeakForm())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error measuring leaks database")
}

func TestSubmitLeak_NoFile(t *testing.T) {
	form := testLeakForm()
	form.File = nil

	_, err := newTestAdapter(t, "http://127.0.0.1:1").SubmitLeak(context.Background(), form)

	assert.ErrorIs(t, err, ErrNoLeakFile)
}

func TestSubmitLeak_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).SubmitLeak(context.Background(), testLeakForm())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit leak request")
}

// ── Health / Version ────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReport models.HealthResponse
		wantErr    error
	}{
		{"healthy", http.StatusOK, `{"status":"healthy"}`, models.HealthResponse{Status: "healthy"}, nil},
		{
			"unhealthy",
			http.StatusServiceUnavailable,
			`{"status":"unhealthy","error":"leaks database is unreachable"}`,
			models.HealthResponse{Status: "unhealthy", Error: "leaks database is unreachable"},
			ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			report, err := newTestAdapter(t, srv.URL).Health(context.Background())

			assert.Equal(t, tt.wantReport, report)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://0.0.0.0:55545", want: "http://0.0.0.0:55545"},
		{raw: "localhost:55545", want: "http://localhost:55545"},
		{raw: "  https://bridge.example/ ", want: "https://bridge.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}
