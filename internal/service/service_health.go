package service

import (
	"context"
	"fmt"

	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/store"
)

type healthService struct {
	leaksDatabase store.LeaksDatabase

	logger *logger.Logger
}

func NewHealthService(leaksDatabase store.LeaksDatabase, logger *logger.Logger) HealthService {
	return &healthService{
		leaksDatabase: leaksDatabase,
		logger:        logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.leaksDatabase.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	return nil
}
