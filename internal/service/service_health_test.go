package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/mock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockLeaksDatabase(ctrl)
	svc := NewHealthService(db, logger.Nop())

	db.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Check(context.Background()))

	pingErr := errors.New("file is not a database")
	db.EXPECT().Ping(gomock.Any()).Return(pingErr)
	err := svc.Check(context.Background())
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.ErrorIs(t, err, pingErr)
}
