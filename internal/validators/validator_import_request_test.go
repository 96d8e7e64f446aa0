package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavrapasse/import-web-api/models"
)

func validImportRequest() models.ImportRequest {
	return models.ImportRequest{
		Context:   "leak A",
		ShareDate: time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC),
		Platforms: []string{"tg"},
		Leakers:   []string{},
		LeakFile:  "/tmp/leak-1.txt",
	}
}

func TestNewImportRequestValidator(t *testing.T) {
	v := NewImportRequestValidator()
	require.NotNil(t, v)
}

func TestImportRequestValidator_Dispatch(t *testing.T) {
	v := NewImportRequestValidator()
	ctx := context.Background()
	req := validImportRequest()

	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.ErrorIs(t, v.Validate(ctx, "not a request"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "unknown"), ErrUnknownField)
}

func TestImportRequestValidator_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ImportRequest)
		wantErr error
	}{
		{"blank context", func(r *models.ImportRequest) { r.Context = " " }, ErrEmptyContext},
		{"zero share date", func(r *models.ImportRequest) { r.ShareDate = time.Time{} }, ErrInvalidShareDate},
		{"empty platform token", func(r *models.ImportRequest) { r.Platforms = []string{"tg", ""} }, ErrMissingField},
		{"empty leaker token", func(r *models.ImportRequest) { r.Leakers = []string{""} }, ErrMissingField},
		{"no leak file", func(r *models.ImportRequest) { r.LeakFile = "" }, ErrMissingLeakFile},
	}

	v := NewImportRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validImportRequest()
			tt.mutate(&req)
			assert.ErrorIs(t, v.Validate(context.Background(), req), tt.wantErr)
		})
	}
}

func TestImportRequestValidator_ScopedFields(t *testing.T) {
	req := validImportRequest()
	req.LeakFile = ""

	err := NewImportRequestValidator().Validate(context.Background(), req, FieldContext, FieldShareDate)
	assert.NoError(t, err)
}
