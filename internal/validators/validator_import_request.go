package validators

import (
	"context"
	"strings"

	"github.com/palavrapasse/import-web-api/models"
)

const (
	FieldContext   = "context"
	FieldShareDate = "share_date"
	FieldPlatforms = "platforms"
	FieldLeakers   = "leakers"
	FieldLeakFile  = "leak_file"
)

type ImportRequestValidator struct {
}

func NewImportRequestValidator() Validator {
	return &ImportRequestValidator{}
}

func (v *ImportRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ImportRequest:
		return v.validateImportRequest(ctx, value, fields...)
	case *models.ImportRequest:
		return v.validateImportRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ImportRequestValidator) validateImportRequest(ctx context.Context, req models.ImportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContext, FieldShareDate, FieldPlatforms, FieldLeakers, FieldLeakFile}
	}

	for _, f := range fields {
		switch f {
		case FieldContext:
			if strings.TrimSpace(req.Context) == "" {
				return ErrEmptyContext
			}
		case FieldShareDate:
			if req.ShareDate.IsZero() {
				return ErrInvalidShareDate
			}
		case FieldPlatforms:
			if hasEmpty(req.Platforms) {
				return ErrMissingField
			}
		case FieldLeakers:
			if hasEmpty(req.Leakers) {
				return ErrMissingField
			}
		case FieldLeakFile:
			if req.LeakFile == "" {
				return ErrMissingLeakFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// hasEmpty reports whether list holds a zero-length token, which the
// importer would read as a separate empty entry.
func hasEmpty(list []string) bool {
	for _, s := range list {
		if s == "" {
			return true
		}
	}
	return false
}
