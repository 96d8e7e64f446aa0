// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/validators"
	"github.com/palavrapasse/import-web-api/models"
)

// importLeak accepts a leak submission, runs the importer and answers with
// the number of bytes the leaks database grew by.
func (h *Handler) importLeak(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		err = fmt.Errorf("%w: %w", ErrMultipartParse, err)
		log.Err(err).Msg("rejected leak submission")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	req, err := validators.ParseForm(r.MultipartForm.Value)
	if err != nil {
		h.importFailed(w, r, req, err)
		return
	}

	fileHeader, err := validators.LeakFile(r.MultipartForm.File)
	if err != nil {
		h.importFailed(w, r, req, err)
		return
	}

	upload, err := h.storeUpload(ctx, fileHeader)
	if err != nil {
		h.importFailed(w, r, req, err)
		return
	}
	defer h.discardUpload(ctx, upload)
	req.LeakFile = upload.Path

	outcome, err := h.services.ImportService.Import(ctx, req)
	if err != nil {
		h.importFailed(w, r, req, err)
		return
	}

	withRequest(log.Info(), req).
		Int64("size_before", outcome.SizeBefore).
		Int64("size_after", outcome.SizeAfter).
		Int64("delta", outcome.Delta).
		Int("exit_code", outcome.ExitCode).
		Msg("leak imported")

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(strconv.FormatInt(outcome.Delta, 10)))
}

func (h *Handler) storeUpload(ctx context.Context, fileHeader *multipart.FileHeader) (models.StoredUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return models.StoredUpload{}, fmt.Errorf("%w: %w", ErrOpeningUpload, err)
	}
	defer file.Close()

	return h.services.UploadService.Store(ctx, fileHeader.Filename, file)
}

// discardUpload removes the stored leak file. Import only returns once the
// importer has exited, so the file is no longer read by anyone.
func (h *Handler) discardUpload(ctx context.Context, upload models.StoredUpload) {
	if err := h.services.UploadService.Discard(ctx, upload); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("path", upload.Path).Msg("could not remove leak file")
	}
}

func (h *Handler) importFailed(w http.ResponseWriter, r *http.Request, req models.ImportRequest, err error) {
	log := logger.FromRequest(r)
	withRequest(log.Error().Err(err), req).Msg("leak import failed")

	http.Error(w, err.Error(), statusFromError(err))
}

// withRequest adds whatever part of req has been derived so far.
func withRequest(e *zerolog.Event, req models.ImportRequest) *zerolog.Event {
	e = e.Str("context", req.Context).
		Strs("platforms", req.Platforms).
		Strs("leakers", req.Leakers)
	if !req.ShareDate.IsZero() {
		e = e.Str("share_date", req.ShareDay())
	}
	if req.LeakFile != "" {
		e = e.Str("leak_file", req.LeakFile)
	}
	return e
}
