package service

import (
	"context"
	"fmt"

	"github.com/palavrapasse/import-web-api/internal/validators"
	"github.com/palavrapasse/import-web-api/models"
)

type ImportValidationService struct {
	inner     ImportService
	validator validators.Validator
}

func NewImportValidationService() ImportServiceWrapper {
	return &ImportValidationService{
		validator: validators.NewImportRequestValidator(),
	}
}

// Import rejects incomplete requests before anything is measured or run.
func (v *ImportValidationService) Import(ctx context.Context, req models.ImportRequest) (models.ImportOutcome, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ImportOutcome{}, fmt.Errorf("%w: %w", ErrInvalidImportRequest, err)
	}

	return v.inner.Import(ctx, req)
}

func (v *ImportValidationService) Wrap(wrapped ImportService) ImportService {
	v.inner = wrapped
	return v
}
