package http

import (
	"errors"
	"net/http"

	"github.com/palavrapasse/import-web-api/internal/service"
	"github.com/palavrapasse/import-web-api/internal/store"
	"github.com/palavrapasse/import-web-api/internal/validators"
)

// Every import failure is reported as 500 so the browser form shows the
// body as-is. The table still names each kind so new ones are mapped
// deliberately.
var errorStatusMap = map[error]int{
	ErrMultipartParse: http.StatusInternalServerError,
	ErrOpeningUpload:  http.StatusInternalServerError,

	validators.ErrFieldValidation:   http.StatusInternalServerError,
	service.ErrInvalidImportRequest: http.StatusInternalServerError,
	service.ErrMeasurement:          http.StatusInternalServerError,
	service.ErrProcessInvocation:    http.StatusInternalServerError,
	service.ErrImporterFailed:       http.StatusInternalServerError,
	service.ErrUnhealthy:            http.StatusServiceUnavailable,

	store.ErrSavingUpload: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
